package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

// Names of the new bill form fields.
const (
	FieldExpenseType = "expense-type"
	FieldExpenseName = "expense-name"
	FieldDate        = "datepicker"
	FieldAmount      = "amount"
	FieldVAT         = "vat"
	FieldPercentage  = "pct"
	FieldCommentary  = "commentary"
)

// InvalidExtensionMessage is shown when the selected receipt is not an image.
var InvalidExtensionMessage = "L'extension du fichier n'est pas autorisée. Les extensions valides sont : " +
	strings.Join(entity.ReceiptExtensions, ", ")

// FormState is what the form remembers between the file upload and the submission.
type FormState struct {
	BillID   string
	FileURL  string
	FileName string
}

// NewBillForm is not safe for concurrent use; each user action drives it in turn.
type NewBillForm struct {
	deps  Deps
	state FormState
}

func NewNewBillForm(deps Deps, state FormState) *NewBillForm {
	return &NewBillForm{
		deps:  deps,
		state: state,
	}
}

func (f *NewBillForm) State() FormState {
	return f.state
}

func (f *NewBillForm) BillID() string {
	return f.state.BillID
}

func (f *NewBillForm) FileURL() string {
	return f.state.FileURL
}

func (f *NewBillForm) FileName() string {
	return f.state.FileName
}

// HandleChangeFile validates the selected receipt and uploads it right away.
// A rejected extension alerts the user and clears the input; an upload
// failure is only logged.
func (f *NewBillForm) HandleChangeFile(ctx context.Context, input FileInput) {
	file, ok := input.File()
	if !ok {
		return
	}

	fileName := entity.BaseFileName(file.Name)

	if !entity.IsReceiptExtensionAllowed(fileName) {
		input.Clear()
		f.deps.Notifier.Alert(InvalidExtensionMessage)

		return
	}

	f.state = FormState{}

	user, err := f.deps.Session.CurrentUser(ctx)
	if err != nil {
		f.deps.logger().ErrorContext(ctx, "get current user", "error", err)
		return
	}

	file.Name = fileName

	res, err := f.deps.Store.Create(ctx, file, user.Email)
	if err != nil {
		f.deps.logger().ErrorContext(ctx, "upload receipt", "error", err)
		return
	}

	f.state = FormState{
		BillID:   res.Key,
		FileURL:  res.FileURL,
		FileName: fileName,
	}
}

// HandleSubmit saves the bill under the id obtained by the receipt upload and
// goes back to the bill list. Update failures are logged and returned.
func (f *NewBillForm) HandleSubmit(ctx context.Context, fields Fields) error {
	if f.state.BillID == "" || f.state.FileURL == "" {
		f.deps.logger().WarnContext(ctx, "bill submitted without receipt")
		return fmt.Errorf("submit bill: %w", entity.ErrReceiptMissing)
	}

	user, err := f.deps.Session.CurrentUser(ctx)
	if err != nil {
		f.deps.logger().ErrorContext(ctx, "get current user", "error", err)
		return fmt.Errorf("get current user: %w", err)
	}

	bill, err := f.billFromFields(user.Email, fields)
	if err != nil {
		f.deps.logger().WarnContext(ctx, "invalid bill fields", "error", err, "bill_id", f.state.BillID)
		return fmt.Errorf("submit bill: %w", err)
	}

	_, err = f.deps.Store.Update(ctx, f.state.BillID, bill)
	if err != nil {
		f.deps.logger().ErrorContext(ctx, "update bill", "error", err, "bill_id", f.state.BillID)
		return err
	}

	f.deps.Navigator.Navigate(RouteBills)

	return nil
}

func (f *NewBillForm) billFromFields(email string, fields Fields) (entity.Bill, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(fields.Get(FieldAmount)))
	if err != nil {
		return entity.Bill{}, fmt.Errorf("%w: invalid amount %q", entity.ErrIncorrectBill, fields.Get(FieldAmount))
	}

	date := strings.TrimSpace(fields.Get(FieldDate))

	_, err = entity.ParseBillDate(date)
	if err != nil {
		return entity.Bill{}, fmt.Errorf("%w: invalid date %q", entity.ErrIncorrectBill, date)
	}

	vat := decimal.Zero

	if v := strings.TrimSpace(fields.Get(FieldVAT)); v != "" {
		vat, err = decimal.NewFromString(v)
		if err != nil {
			return entity.Bill{}, fmt.Errorf("%w: invalid vat %q", entity.ErrIncorrectBill, v)
		}
	}

	pct := entity.DefaultPercentage

	if v := strings.TrimSpace(fields.Get(FieldPercentage)); v != "" {
		pct, err = strconv.Atoi(v)
		if err != nil {
			return entity.Bill{}, fmt.Errorf("%w: invalid percentage %q", entity.ErrIncorrectBill, v)
		}
	}

	return entity.Bill{
		ID:         f.state.BillID,
		Email:      email,
		Type:       fields.Get(FieldExpenseType),
		Name:       fields.Get(FieldExpenseName),
		Amount:     amount,
		Date:       date,
		VATAmount:  vat,
		Percentage: pct,
		Commentary: fields.Get(FieldCommentary),
		FileURL:    f.state.FileURL,
		FileName:   f.state.FileName,
		Status:     entity.BillStatusPending,
	}, nil
}
