package events

import (
	"context"

	"github.com/samandr77/microservices/expenses/internal/entity"
)

type Sender interface {
	Send(ctx context.Context, topic, key string, event any) error
}

type Publisher struct {
	sender             Sender
	billSubmittedTopic string
}

func NewPublisher(sender Sender, billSubmittedTopic string) *Publisher {
	return &Publisher{
		sender:             sender,
		billSubmittedTopic: billSubmittedTopic,
	}
}

func (p *Publisher) BillSubmitted(ctx context.Context, event entity.BillSubmittedEvent) error {
	return p.sender.Send(ctx, p.billSubmittedTopic, event.BillID, event)
}

// Nop drops events. Used when no Kafka brokers are configured.
type Nop struct{}

func (Nop) BillSubmitted(context.Context, entity.BillSubmittedEvent) error {
	return nil
}
