package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -source=event_handler.go -destination=../../mocks/events.go -package=mocks

type StatusChanger interface {
	ChangeBillStatus(ctx context.Context, id uuid.UUID, status entity.BillStatus) error
}

type EventHandler struct {
	s StatusChanger
}

func NewEventHandler(s StatusChanger) *EventHandler {
	return &EventHandler{s: s}
}

// OnBillStatusChanged applies a decision published by the validation
// workflow. Events about unknown bills are dropped.
func (h *EventHandler) OnBillStatusChanged(ctx context.Context, msg kafka.Message) error {
	var event entity.BillStatusChange

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	err = h.s.ChangeBillStatus(ctx, event.BillID, event.Status)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "status change for unknown bill", "bill_id", event.BillID)
			return nil
		}

		return fmt.Errorf("change bill status: %w", err)
	}

	return nil
}
