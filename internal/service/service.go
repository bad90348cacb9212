package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/format"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateBill(ctx context.Context, bill entity.StoredBill) error
	BillByID(ctx context.Context, id uuid.UUID) (entity.StoredBill, error)
	SubmitBill(ctx context.Context, bill entity.Bill, submittedAt time.Time) error
	BillsList(ctx context.Context, filter entity.BillsFilter) ([]entity.StoredBill, error)
	UpdateBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error
	DraftsCreatedBefore(ctx context.Context, before time.Time) ([]entity.StoredBill, error)
	DeleteDrafts(ctx context.Context, ids ...uuid.UUID) ([]string, error)
}

type FileStorage interface {
	Upload(ctx context.Context, key string, file entity.File) (string, error)
	Delete(ctx context.Context, key string) error
}

type Events interface {
	BillSubmitted(ctx context.Context, event entity.BillSubmittedEvent) error
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string, contentType string) error
}

type Service struct {
	repo          Repository
	files         FileStorage
	events        Events
	mailer        Mailer
	maxUploadSize int64
	draftTTL      time.Duration
	now           func() time.Time
}

func New(
	repo Repository,
	files FileStorage,
	events Events,
	mailer Mailer,
	maxUploadSize int64,
	draftTTL time.Duration,
) *Service {
	return &Service{
		repo:          repo,
		files:         files,
		events:        events,
		mailer:        mailer,
		maxUploadSize: maxUploadSize,
		draftTTL:      draftTTL,
		now:           time.Now,
	}
}

// CreateBill stores the receipt and opens a draft bill for it. The returned
// key identifies the draft for the following UpdateBill.
func (s *Service) CreateBill(ctx context.Context, file entity.File, email string) (entity.UploadResult, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("get user from context: %w", err)
	}

	if email == "" {
		email = user.Email
	}

	if email != user.Email && !user.IsAdmin() {
		return entity.UploadResult{}, fmt.Errorf("%w: user %s can't create bills for %s", entity.ErrForbidden, user.Email, email)
	}

	file.Name = entity.BaseFileName(file.Name)

	err = ValidateReceipt(file, s.maxUploadSize)
	if err != nil {
		return entity.UploadResult{}, err
	}

	id := uuid.Must(uuid.NewV4())
	key := fmt.Sprintf("bills/%s/%s", id, file.Name)

	fileURL, err := s.files.Upload(ctx, key, file)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("upload receipt: %w", err)
	}

	draft := entity.StoredBill{
		Bill: entity.Bill{
			ID:         id.String(),
			Email:      email,
			Percentage: entity.DefaultPercentage,
			FileURL:    fileURL,
			FileName:   file.Name,
			Status:     entity.BillStatusPending,
		},
		FileKey:   key,
		CreatedAt: s.now(),
	}

	err = s.repo.CreateBill(ctx, draft)
	if err != nil {
		s.deleteFile(ctx, key)
		return entity.UploadResult{}, fmt.Errorf("create bill: %w", err)
	}

	slog.InfoContext(ctx, "receipt uploaded", "bill_id", id, "file_name", file.Name)

	return entity.UploadResult{
		FileURL: fileURL,
		Key:     id.String(),
	}, nil
}

// UpdateBill fills in a bill and submits it for validation. The receipt and
// owner recorded at upload time cannot be changed.
func (s *Service) UpdateBill(ctx context.Context, id string, bill entity.Bill) (entity.Bill, error) {
	stored, err := s.ownedBill(ctx, id)
	if err != nil {
		return entity.Bill{}, err
	}

	if stored.Status != entity.BillStatusPending {
		return entity.Bill{}, fmt.Errorf("%w: bill %s is %s", entity.ErrBillProcessed, id, stored.Status)
	}

	err = ValidateBill(bill)
	if err != nil {
		return entity.Bill{}, err
	}

	date, _ := entity.ParseBillDate(bill.Date)

	bill.Date = date.Format(entity.BillDateLayout)
	bill.ID = stored.ID
	bill.Email = stored.Email
	bill.FileURL = stored.FileURL
	bill.FileName = stored.FileName
	bill.Status = entity.BillStatusPending

	err = s.repo.SubmitBill(ctx, bill, s.now())
	if err != nil {
		return entity.Bill{}, fmt.Errorf("submit bill: %w", err)
	}

	err = s.events.BillSubmitted(ctx, entity.BillSubmittedEvent{
		BillID: bill.ID,
		Email:  bill.Email,
		Amount: bill.Amount,
		Date:   bill.Date,
	})
	if err != nil {
		slog.ErrorContext(ctx, "publish bill submitted", "error", err, "bill_id", bill.ID)
	}

	slog.InfoContext(ctx, "bill submitted", "bill_id", bill.ID)

	return bill, nil
}

// ListBills returns the submitted bills visible to the user: their own, or
// every bill for an admin.
func (s *Service) ListBills(ctx context.Context) ([]entity.Bill, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get user from context: %w", err)
	}

	stored, err := s.repo.BillsList(ctx, entity.BillsFilter{
		Email: user.Email,
		All:   user.IsAdmin(),
	})
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	bills := make([]entity.Bill, 0, len(stored))

	for _, b := range stored {
		bills = append(bills, b.Bill)
	}

	return bills, nil
}

func (s *Service) BillByID(ctx context.Context, id string) (entity.Bill, error) {
	stored, err := s.ownedBill(ctx, id)
	if err != nil {
		return entity.Bill{}, err
	}

	if stored.IsDraft() {
		return entity.Bill{}, fmt.Errorf("%w: bill %s is not submitted", entity.ErrNotFound, id)
	}

	return stored.Bill, nil
}

// ChangeBillStatus records the validation decision on a submitted bill and
// tells its owner. Callers are trusted: the HTTP route is admin only and the
// event comes from the validation service.
func (s *Service) ChangeBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error {
	if status != entity.BillStatusAccepted && status != entity.BillStatusRefused {
		return fmt.Errorf("%w: status %q", entity.ErrIncorrectRequestBody, status)
	}

	stored, err := s.repo.BillByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get bill %s: %w", id, err)
	}

	if stored.IsDraft() {
		return fmt.Errorf("%w: bill %s is not submitted", entity.ErrNotFound, id)
	}

	if stored.Status == status {
		return nil
	}

	err = s.repo.UpdateBillStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update bill status: %w", err)
	}

	slog.InfoContext(ctx, "bill status changed", "bill_id", id, "status", status)

	s.notifyOwner(ctx, stored.Bill, status)

	return nil
}

// PurgeDrafts removes bills whose receipt was uploaded but which were never
// submitted, together with their receipts. A draft submitted while the job
// runs is kept with its receipt.
func (s *Service) PurgeDrafts(ctx context.Context) error {
	drafts, err := s.repo.DraftsCreatedBefore(ctx, s.now().Add(-s.draftTTL))
	if err != nil {
		return fmt.Errorf("get drafts: %w", err)
	}

	if len(drafts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(drafts))

	for _, d := range drafts {
		ids = append(ids, uuid.FromStringOrNil(d.ID))
	}

	fileKeys, err := s.repo.DeleteDrafts(ctx, ids...)
	if err != nil {
		return fmt.Errorf("delete drafts: %w", err)
	}

	for _, key := range fileKeys {
		s.deleteFile(ctx, key)
	}

	slog.InfoContext(ctx, "drafts purged", "count", len(fileKeys))

	return nil
}

func (s *Service) ownedBill(ctx context.Context, id string) (entity.StoredBill, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.StoredBill{}, fmt.Errorf("get user from context: %w", err)
	}

	billID, err := uuid.FromString(id)
	if err != nil {
		return entity.StoredBill{}, fmt.Errorf("%w: bill %q", entity.ErrNotFound, id)
	}

	stored, err := s.repo.BillByID(ctx, billID)
	if err != nil {
		return entity.StoredBill{}, fmt.Errorf("get bill %s: %w", id, err)
	}

	if stored.Email != user.Email && !user.IsAdmin() {
		return entity.StoredBill{}, fmt.Errorf("%w: bill %s doesn't belong to %s", entity.ErrForbidden, id, user.Email)
	}

	return stored, nil
}

func (s *Service) deleteFile(ctx context.Context, key string) {
	err := s.files.Delete(ctx, key)
	if err != nil {
		slog.ErrorContext(ctx, "delete receipt", "error", err, "key", key)
	}
}

func (s *Service) notifyOwner(ctx context.Context, bill entity.Bill, status entity.BillStatus) {
	label, err := format.Status(status)
	if err != nil {
		label = status.String()
	}

	subject := fmt.Sprintf("Note de frais %s : %s", bill.Name, label)
	message := fmt.Sprintf("Votre note de frais « %s » du %s d'un montant de %s € est désormais : %s.",
		bill.Name, bill.Date, bill.Amount.StringFixed(2), label)

	err = s.mailer.SendMessage(subject, message, []string{bill.Email}, "text/plain")
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.ErrorContext(ctx, "notify bill owner", "error", err, "bill_id", bill.ID)
	}
}
