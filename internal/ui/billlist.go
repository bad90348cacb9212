package ui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/samandr77/microservices/expenses/internal/entity"
	"github.com/samandr77/microservices/expenses/internal/format"
)

type BillList struct {
	deps Deps
}

func NewBillList(deps Deps) *BillList {
	return &BillList{deps: deps}
}

// BillRow is a bill ready for display. Date and Status fall back to the raw
// values when they cannot be formatted.
type BillRow struct {
	Bill        entity.Bill
	Date        string
	Status      string
	StatusClass string
}

// ListBills returns the current user's bills, most recent first.
func (l *BillList) ListBills(ctx context.Context) ([]BillRow, error) {
	bills, err := l.deps.Store.List(ctx)
	if err != nil {
		l.deps.logger().ErrorContext(ctx, "list bills", "error", err)
		return nil, fmt.Errorf("list bills: %w", err)
	}

	SortBillsByDateDesc(bills)

	rows := make([]BillRow, 0, len(bills))

	for _, b := range bills {
		rows = append(rows, l.row(ctx, b))
	}

	return rows, nil
}

func (l *BillList) row(ctx context.Context, b entity.Bill) BillRow {
	row := BillRow{
		Bill:        b,
		Date:        b.Date,
		Status:      b.Status.String(),
		StatusClass: format.StatusClass(b.Status),
	}

	date, err := format.Date(b.Date)
	if err != nil {
		l.deps.logger().ErrorContext(ctx, "format bill date", "error", err, "bill_id", b.ID)
	} else {
		row.Date = date
	}

	status, err := format.Status(b.Status)
	if err != nil {
		l.deps.logger().ErrorContext(ctx, "format bill status", "error", err, "bill_id", b.ID)
	} else {
		row.Status = status
	}

	return row
}

// HandleClickIconEye opens the receipt viewer on the given file.
func (l *BillList) HandleClickIconEye(fileURL string) {
	l.deps.Modal.Show(fileURL)
}

func (l *BillList) HandleClickNewBill() {
	l.deps.Navigator.Navigate(RouteNewBill)
}

// SortBillsByDateDesc orders bills from the most recent date to the oldest.
// The sort is stable: bills sharing a date keep their relative order, and
// bills with an unparsable date go last.
func SortBillsByDateDesc(bills []entity.Bill) {
	type keyed struct {
		t  time.Time
		ok bool
	}

	keys := make(map[string]keyed, len(bills))

	for _, b := range bills {
		if _, seen := keys[b.Date]; seen {
			continue
		}

		t, err := entity.ParseBillDate(b.Date)
		keys[b.Date] = keyed{t: t, ok: err == nil}
	}

	slices.SortStableFunc(bills, func(a, b entity.Bill) int {
		ka, kb := keys[a.Date], keys[b.Date]

		switch {
		case !ka.ok && !kb.ok:
			return 0
		case !ka.ok:
			return 1
		case !kb.ok:
			return -1
		default:
			return kb.t.Compare(ka.t)
		}
	})
}
