package entity

import (
	"io"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) IsValid() bool {
	switch s {
	case BillStatusPending, BillStatusAccepted, BillStatusRefused:
		return true
	default:
		return false
	}
}

// BillDateLayout is the layout of Bill.Date.
const BillDateLayout = time.DateOnly

const DefaultPercentage = 20

type Bill struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Type       string          `json:"type"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	VATAmount  decimal.Decimal `json:"vat"`
	Percentage int             `json:"pct"`
	Commentary string          `json:"commentary"`
	FileURL    string          `json:"fileUrl"`
	FileName   string          `json:"fileName"`
	Status     BillStatus      `json:"status"`
}

// ParseBillDate accepts both the plain date layout and RFC 3339 timestamps.
func ParseBillDate(s string) (time.Time, error) {
	t, err := time.Parse(BillDateLayout, s)
	if err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}

// StoredBill is a bill row together with its bookkeeping columns.
type StoredBill struct {
	Bill
	FileKey     string
	CreatedAt   time.Time
	SubmittedAt *time.Time
}

func (b StoredBill) IsDraft() bool {
	return b.SubmittedAt == nil
}

type UploadResult struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

// ReceiptExtensions lists the accepted receipt file extensions.
var ReceiptExtensions = []string{".jpg", ".jpeg", ".png"}

func IsReceiptExtensionAllowed(fileName string) bool {
	return slices.Contains(ReceiptExtensions, strings.ToLower(path.Ext(BaseFileName(fileName))))
}

// BaseFileName strips any client side directory, including Windows style
// "C:\fakepath\" prefixes sent by browsers.
func BaseFileName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		return name[i+1:]
	}

	return name
}

type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

var ExpenseTypes = []string{
	"Transports",
	"Restaurants et bars",
	"Hôtel et logement",
	"Services en ligne",
	"IT et électronique",
	"Equipement et matériel",
	"Fournitures de bureau",
}

type BillsFilter struct {
	Email string
	All   bool
}

type BillStatusChange struct {
	BillID uuid.UUID  `json:"bill_id"`
	Status BillStatus `json:"status"`
}

type BillSubmittedEvent struct {
	BillID string          `json:"bill_id"`
	Email  string          `json:"email"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}
