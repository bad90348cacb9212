// Package ui holds the employee facing pages: the bill list and the new bill
// form. Everything a page touches outside itself (storage, session,
// navigation, dialogs) is injected, so the pages run the same behind the
// web tier and in tests.
package ui

import (
	"context"
	"log/slog"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -source=ui.go -destination=../mocks/ui.go -package=mocks

const (
	RouteBills   = "/employee/bills"
	RouteNewBill = "/employee/bill/new"
)

type Store interface {
	Create(ctx context.Context, file entity.File, email string) (entity.UploadResult, error)
	Update(ctx context.Context, id string, bill entity.Bill) (entity.Bill, error)
	List(ctx context.Context) ([]entity.Bill, error)
}

type SessionStore interface {
	CurrentUser(ctx context.Context) (entity.User, error)
}

type Navigator interface {
	Navigate(route string)
}

type Notifier interface {
	Alert(message string)
}

type Modal interface {
	Show(fileURL string)
}

// FileInput is the receipt file input of the new bill form.
type FileInput interface {
	File() (entity.File, bool)
	Clear()
}

// Fields gives access to the submitted form values; url.Values satisfies it.
type Fields interface {
	Get(name string) string
}

type Deps struct {
	Store     Store
	Session   SessionStore
	Navigator Navigator
	Notifier  Notifier
	Modal     Modal
	Logger    *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}

	return d.Logger
}
