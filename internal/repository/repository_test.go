package repository_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/repository"
	"github.com/samandr77/microservices/expenses/pkg/postgres"
)

func TestRepository_BillLifecycle(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	draft := newDraft(uuid.Must(uuid.NewV4()).String()+"@test.tld", time.Now())

	r.NoError(repo.CreateBill(ctx, draft))

	got, err := repo.BillByID(ctx, uuid.FromStringOrNil(draft.ID))
	r.NoError(err)
	r.Equal(draft.Email, got.Email)
	r.Equal("", got.Date)
	r.Equal(draft.FileKey, got.FileKey)
	r.True(got.IsDraft())

	bill := draft.Bill
	bill.Type = "Transports"
	bill.Name = "Paris - Lyon"
	bill.Amount = decimal.RequireFromString("120.50")
	bill.Date = "2024-04-04"
	bill.VATAmount = decimal.RequireFromString("24.10")
	bill.Commentary = "déplacement client"

	submittedAt := time.Now().Truncate(time.Millisecond)

	r.NoError(repo.SubmitBill(ctx, bill, submittedAt))

	got, err = repo.BillByID(ctx, uuid.FromStringOrNil(draft.ID))
	r.NoError(err)
	r.Equal(bill.Name, got.Name)
	r.Equal(bill.Date, got.Date)
	r.True(bill.Amount.Equal(got.Amount))
	r.True(bill.VATAmount.Equal(got.VATAmount))
	r.Equal(bill.FileURL, got.FileURL)
	r.NotNil(got.SubmittedAt)
	r.WithinDuration(submittedAt, *got.SubmittedAt, time.Millisecond)

	r.NoError(repo.UpdateBillStatus(ctx, uuid.FromStringOrNil(draft.ID), entity.BillStatusAccepted))

	got, err = repo.BillByID(ctx, uuid.FromStringOrNil(draft.ID))
	r.NoError(err)
	r.Equal(entity.BillStatusAccepted, got.Status)
}

func TestRepository_NotFound(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	_, err := repo.BillByID(ctx, id)
	r.ErrorIs(err, entity.ErrNotFound)

	err = repo.SubmitBill(ctx, entity.Bill{ID: id.String(), Status: entity.BillStatusPending}, time.Now())
	r.ErrorIs(err, entity.ErrNotFound)

	err = repo.UpdateBillStatus(ctx, id, entity.BillStatusRefused)
	r.ErrorIs(err, entity.ErrNotFound)
}

func TestRepository_BillsList(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()
	email := uuid.Must(uuid.NewV4()).String() + "@test.tld"

	dates := []string{"2004-04-04", "2003-03-03", "2002-02-02", "2001-01-01"}

	// inserted oldest first
	for i := len(dates) - 1; i >= 0; i-- {
		draft := newDraft(email, time.Now())
		r.NoError(repo.CreateBill(ctx, draft))

		bill := draft.Bill
		bill.Date = dates[i]
		bill.Amount = decimal.NewFromInt(10)
		r.NoError(repo.SubmitBill(ctx, bill, time.Now()))
	}

	// drafts never show up
	r.NoError(repo.CreateBill(ctx, newDraft(email, time.Now())))

	bills, err := repo.BillsList(ctx, entity.BillsFilter{Email: email})
	r.NoError(err)
	r.Len(bills, len(dates))

	for i, b := range bills {
		r.Equal(dates[i], b.Date)
		r.Equal(email, b.Email)
	}

	all, err := repo.BillsList(ctx, entity.BillsFilter{Email: "admin@test.tld", All: true})
	r.NoError(err)
	r.GreaterOrEqual(len(all), len(dates))
}

func TestRepository_Drafts(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()
	email := uuid.Must(uuid.NewV4()).String() + "@test.tld"

	old := newDraft(email, time.Now().Add(-48*time.Hour))
	fresh := newDraft(email, time.Now())

	r.NoError(repo.CreateBill(ctx, old))
	r.NoError(repo.CreateBill(ctx, fresh))

	drafts, err := repo.DraftsCreatedBefore(ctx, time.Now().Add(-24*time.Hour))
	r.NoError(err)

	ids := make([]string, 0, len(drafts))
	for _, d := range drafts {
		ids = append(ids, d.ID)
	}

	r.Contains(ids, old.ID)
	r.NotContains(ids, fresh.ID)

	fileKeys, err := repo.DeleteDrafts(ctx, uuid.FromStringOrNil(old.ID))
	r.NoError(err)
	r.Equal([]string{old.FileKey}, fileKeys)

	_, err = repo.BillByID(ctx, uuid.FromStringOrNil(old.ID))
	r.ErrorIs(err, entity.ErrNotFound)

	_, err = repo.BillByID(ctx, uuid.FromStringOrNil(fresh.ID))
	r.NoError(err)

	fileKeys, err = repo.DeleteDrafts(ctx)
	r.NoError(err)
	r.Empty(fileKeys)
}

func TestRepository_DeleteDrafts_KeepsSubmitted(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()
	email := uuid.Must(uuid.NewV4()).String() + "@test.tld"

	stale := newDraft(email, time.Now().Add(-48*time.Hour))
	submitted := newDraft(email, time.Now().Add(-48*time.Hour))

	r.NoError(repo.CreateBill(ctx, stale))
	r.NoError(repo.CreateBill(ctx, submitted))

	// submitted after the purge job listed it
	bill := submitted.Bill
	bill.Date = "2024-04-04"
	bill.Amount = decimal.NewFromInt(10)
	r.NoError(repo.SubmitBill(ctx, bill, time.Now()))

	fileKeys, err := repo.DeleteDrafts(ctx, uuid.FromStringOrNil(stale.ID), uuid.FromStringOrNil(submitted.ID))
	r.NoError(err)
	r.Equal([]string{stale.FileKey}, fileKeys)

	got, err := repo.BillByID(ctx, uuid.FromStringOrNil(submitted.ID))
	r.NoError(err)
	r.False(got.IsDraft())
}

func TestRepository_SubmitBill_Processed(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	repo := repository.New(dbPool(t))
	ctx := context.Background()

	draft := newDraft(uuid.Must(uuid.NewV4()).String()+"@test.tld", time.Now())
	r.NoError(repo.CreateBill(ctx, draft))

	bill := draft.Bill
	bill.Date = "2024-04-04"
	bill.Amount = decimal.NewFromInt(10)
	r.NoError(repo.SubmitBill(ctx, bill, time.Now()))

	r.NoError(repo.UpdateBillStatus(ctx, uuid.FromStringOrNil(draft.ID), entity.BillStatusAccepted))

	err := repo.SubmitBill(ctx, bill, time.Now())
	r.ErrorIs(err, entity.ErrBillProcessed)

	got, err := repo.BillByID(ctx, uuid.FromStringOrNil(draft.ID))
	r.NoError(err)
	r.Equal(entity.BillStatusAccepted, got.Status)
}

func newDraft(email string, createdAt time.Time) entity.StoredBill {
	id := uuid.Must(uuid.NewV4()).String()

	return entity.StoredBill{
		Bill: entity.Bill{
			ID:         id,
			Email:      email,
			Percentage: entity.DefaultPercentage,
			FileURL:    "https://files.test.tld/bills/" + id + "/receipt.jpg",
			FileName:   "receipt.jpg",
			Status:     entity.BillStatusPending,
		},
		FileKey:   "bills/" + id + "/receipt.jpg",
		CreatedAt: createdAt,
	}
}

var (
	migrateOnce sync.Once
	migrateErr  error
)

func dbPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	migrateOnce.Do(func() {
		migrateErr = postgres.UpMigrations(dsn)
	})
	require.NoError(t, migrateErr)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}
