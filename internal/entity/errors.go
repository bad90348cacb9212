package entity

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrIncorrectBill        = errors.New("incorrect bill")
	ErrInvalidFileExtension = errors.New("invalid file extension")
	ErrFileTooLarge         = errors.New("file too large")
	ErrReceiptMissing       = errors.New("receipt missing")
	ErrUnknownStatus        = errors.New("unknown bill status")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrBillProcessed        = errors.New("bill already processed")
)

// StatusError is a failure answered by a remote service with an HTTP status code.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code %d", e.Code)
	}

	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Message)
}

// Is lets errors.Is match a StatusError against the sentinel of the same meaning.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthenticated:
		return e.Code == http.StatusUnauthorized
	default:
		return false
	}
}
