package service

import (
	"fmt"
	"slices"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

const maxPercentage = 100

func ValidateReceipt(file entity.File, maxSize int64) error {
	if file.Name == "" || file.Content == nil {
		return fmt.Errorf("%w: receipt file is required", entity.ErrIncorrectRequestBody)
	}

	if !entity.IsReceiptExtensionAllowed(file.Name) {
		return fmt.Errorf("%w: %s", entity.ErrInvalidFileExtension, file.Name)
	}

	if maxSize > 0 && file.Size > maxSize {
		return fmt.Errorf("%w: %d bytes, max %d", entity.ErrFileTooLarge, file.Size, maxSize)
	}

	return nil
}

func ValidateBill(bill entity.Bill) error { //nolint:cyclop
	if !slices.Contains(entity.ExpenseTypes, bill.Type) {
		return fmt.Errorf("%w: unknown expense type %q", entity.ErrIncorrectBill, bill.Type)
	}

	if bill.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrIncorrectBill)
	}

	if !bill.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", entity.ErrIncorrectBill, bill.Amount)
	}

	if bill.VATAmount.IsNegative() {
		return fmt.Errorf("%w: vat can't be negative, got %s", entity.ErrIncorrectBill, bill.VATAmount)
	}

	if bill.Percentage < 0 || bill.Percentage > maxPercentage {
		return fmt.Errorf("%w: pct must be between 0 and %d, got %d", entity.ErrIncorrectBill, maxPercentage, bill.Percentage)
	}

	_, err := entity.ParseBillDate(bill.Date)
	if err != nil {
		return fmt.Errorf("%w: date %q: %w", entity.ErrIncorrectBill, bill.Date, err)
	}

	return nil
}
