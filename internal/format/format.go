// Package format renders bill fields for display.
package format

import (
	"fmt"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

var months = [12]string{
	"Jan.", "Fév.", "Mar.", "Avr.", "Mai.", "Jui.",
	"Jui.", "Aoû.", "Sep.", "Oct.", "Nov.", "Déc.",
}

// Date turns an ISO date into its short French form, e.g. "2004-04-04" into "4 Avr. 04".
func Date(iso string) (string, error) {
	t, err := entity.ParseBillDate(iso)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", iso, err)
	}

	return fmt.Sprintf("%d %s %02d", t.Day(), months[t.Month()-1], t.Year()%100), nil
}

func Status(status entity.BillStatus) (string, error) {
	switch status {
	case entity.BillStatusPending:
		return "En attente", nil
	case entity.BillStatusAccepted:
		return "Accepté", nil
	case entity.BillStatusRefused:
		return "Refusé", nil
	default:
		return "", fmt.Errorf("%w: %q", entity.ErrUnknownStatus, status)
	}
}

// StatusClass is the CSS class a status is displayed with.
func StatusClass(status entity.BillStatus) string {
	switch status {
	case entity.BillStatusPending:
		return "status-pending"
	case entity.BillStatusAccepted:
		return "status-accepted"
	case entity.BillStatusRefused:
		return "status-refused"
	default:
		return ""
	}
}
