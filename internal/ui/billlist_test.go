package ui_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/mocks"
	"github.com/samandr77/microservices/expenses/internal/ui"
)

type testDeps struct {
	store     *mocks.MockStore
	session   *mocks.MockSessionStore
	navigator *mocks.MockNavigator
	notifier  *mocks.MockNotifier
	modal     *mocks.MockModal
	logs      *bytes.Buffer
	deps      ui.Deps
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	logs := new(bytes.Buffer)

	td := &testDeps{
		store:     mocks.NewMockStore(ctrl),
		session:   mocks.NewMockSessionStore(ctrl),
		navigator: mocks.NewMockNavigator(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		modal:     mocks.NewMockModal(ctrl),
		logs:      logs,
	}

	td.deps = ui.Deps{
		Store:     td.store,
		Session:   td.session,
		Navigator: td.navigator,
		Notifier:  td.notifier,
		Modal:     td.modal,
		Logger:    slog.New(slog.NewJSONHandler(logs, nil)),
	}

	return td
}

func fixtureBills() []entity.Bill {
	return []entity.Bill{
		{ID: "47qAXb6fIm2zOKkLzMro", Name: "encore", Date: "2004-04-04", Status: entity.BillStatusPending, FileURL: "https://test.storage.tld/v0/b/billable/a.jpg"},
		{ID: "BeKy5Mo4jkmdfPGYpTxZ", Name: "test1", Date: "2001-01-01", Status: entity.BillStatusRefused, FileURL: "https://test.storage.tld/v0/b/billable/b.jpg"},
		{ID: "UIUZtnPQvnbFnB0ozvJh", Name: "test3", Date: "2003-03-03", Status: entity.BillStatusAccepted, FileURL: "https://test.storage.tld/v0/b/billable/c.jpg"},
		{ID: "qcCK3SzECmaZAGRrHjaC", Name: "test2", Date: "2002-02-02", Status: entity.BillStatusRefused, FileURL: "https://test.storage.tld/v0/b/billable/d.jpg"},
	}
}

func TestBillList_ListBills_FixtureOrder(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)
	td.store.EXPECT().List(gomock.Any()).Return(fixtureBills(), nil)

	rows, err := ui.NewBillList(td.deps).ListBills(context.Background())
	require.NoError(t, err)

	type simplified struct {
		date   string
		status string
	}

	got := make([]simplified, 0, len(rows))
	for _, r := range rows {
		got = append(got, simplified{date: r.Date, status: r.Status})
	}

	require.Equal(t, []simplified{
		{date: "4 Avr. 04", status: "En attente"},
		{date: "3 Mar. 03", status: "Accepté"},
		{date: "2 Fév. 02", status: "Refusé"},
		{date: "1 Jan. 01", status: "Refusé"},
	}, got)
	require.Empty(t, td.logs.String())
}

func TestBillList_ListBills_SortedDescending(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)

	bills := []entity.Bill{
		{ID: "1", Date: "2021-05-15", Status: entity.BillStatusPending},
		{ID: "2", Date: "2023-01-01", Status: entity.BillStatusPending},
		{ID: "3", Date: "1999-12-31", Status: entity.BillStatusAccepted},
		{ID: "4", Date: "2023-01-02", Status: entity.BillStatusRefused},
		{ID: "5", Date: "2022-06-30T08:00:00Z", Status: entity.BillStatusPending},
		{ID: "6", Date: "2010-10-10", Status: entity.BillStatusAccepted},
	}

	td.store.EXPECT().List(gomock.Any()).Return(bills, nil)

	rows, err := ui.NewBillList(td.deps).ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, len(bills))

	for i := 0; i+1 < len(rows); i++ {
		a, err := entity.ParseBillDate(rows[i].Bill.Date)
		require.NoError(t, err)

		b, err := entity.ParseBillDate(rows[i+1].Bill.Date)
		require.NoError(t, err)

		require.False(t, a.Before(b), "%s before %s", rows[i].Bill.Date, rows[i+1].Bill.Date)
	}
}

func TestBillList_ListBills_EqualDatesKeepStoreOrder(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)

	td.store.EXPECT().List(gomock.Any()).Return([]entity.Bill{
		{ID: "a", Date: "2020-01-01", Status: entity.BillStatusPending},
		{ID: "b", Date: "2021-01-01", Status: entity.BillStatusPending},
		{ID: "c", Date: "2020-01-01", Status: entity.BillStatusPending},
		{ID: "d", Date: "2021-01-01", Status: entity.BillStatusPending},
		{ID: "e", Date: "2020-01-01", Status: entity.BillStatusPending},
	}, nil)

	rows, err := ui.NewBillList(td.deps).ListBills(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Bill.ID)
	}

	require.Equal(t, []string{"b", "d", "a", "c", "e"}, ids)
}

func TestBillList_ListBills_MalformedRecord(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)

	td.store.EXPECT().List(gomock.Any()).Return([]entity.Bill{
		{ID: "broken", Date: "04/04/2004", Status: entity.BillStatusPending},
		{ID: "ok", Date: "2004-04-04", Status: "archived"},
	}, nil)

	rows, err := ui.NewBillList(td.deps).ListBills(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "ok", rows[0].Bill.ID)
	require.Equal(t, "4 Avr. 04", rows[0].Date)
	require.Equal(t, "archived", rows[0].Status)

	require.Equal(t, "broken", rows[1].Bill.ID)
	require.Equal(t, "04/04/2004", rows[1].Date)
	require.Equal(t, "En attente", rows[1].Status)

	require.Contains(t, td.logs.String(), "format bill date")
	require.Contains(t, td.logs.String(), "format bill status")
}

func TestBillList_ListBills_StoreError(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)
	storeErr := &entity.StatusError{Code: 500, Message: "boom"}

	td.store.EXPECT().List(gomock.Any()).Return(nil, storeErr)

	rows, err := ui.NewBillList(td.deps).ListBills(context.Background())
	require.Nil(t, rows)

	var statusErr *entity.StatusError
	require.True(t, errors.As(err, &statusErr))
	require.Equal(t, 500, statusErr.Code)
	require.Contains(t, td.logs.String(), storeErr.Error())
}

func TestBillList_HandleClickIconEye(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)
	bills := fixtureBills()

	td.modal.EXPECT().Show(bills[0].FileURL)

	ui.NewBillList(td.deps).HandleClickIconEye(bills[0].FileURL)
}

func TestBillList_HandleClickNewBill(t *testing.T) {
	t.Parallel()

	td := newTestDeps(t)

	td.navigator.EXPECT().Navigate(ui.RouteNewBill)

	ui.NewBillList(td.deps).HandleClickNewBill()
}
