package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

func TestIsReceiptExtensionAllowed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fileName string
		want     bool
	}{
		{fileName: "receipt.jpg", want: true},
		{fileName: "receipt.JPEG", want: true},
		{fileName: "receipt.Png", want: true},
		{fileName: `C:\fakepath\receipt.png`, want: true},
		{fileName: "receipt.pdf", want: false},
		{fileName: "receipt.jpg.exe", want: false},
		{fileName: "receipt", want: false},
		{fileName: "dir.jpg/receipt", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fileName, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, entity.IsReceiptExtensionAllowed(tt.fileName))
		})
	}
}

func TestBaseFileName(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	r.Equal("receipt.png", entity.BaseFileName(`C:\fakepath\receipt.png`))
	r.Equal("receipt.png", entity.BaseFileName("/tmp/receipt.png"))
	r.Equal("receipt.png", entity.BaseFileName("receipt.png"))
}

func TestParseBillDate(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	d, err := entity.ParseBillDate("2004-04-04")
	r.NoError(err)
	r.Equal(time.Date(2004, 4, 4, 0, 0, 0, 0, time.UTC), d)

	d, err = entity.ParseBillDate("2004-04-04T10:00:00Z")
	r.NoError(err)
	r.Equal(2004, d.Year())

	_, err = entity.ParseBillDate("04/04/2004")
	r.Error(err)
}
