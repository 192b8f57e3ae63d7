package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/airlines/internal/kafka"
)

// Sender turns order events into customer notifications. Delivery is a log line for now.
type Sender struct {
	logger *slog.Logger
}

func NewSender(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	subject, err := Subject(event)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "send notification",
		"user_id", event.UserID,
		"order_id", event.OrderID,
		"subject", subject,
		"flights", event.FlightIDs,
	)
	return nil
}

func Subject(event kafka.OrderEvent) (string, error) {
	switch event.Type {
	case kafka.EventOrderCreated:
		return fmt.Sprintf("Order #%d confirmed: %d ticket(s)", event.OrderID, event.Tickets), nil
	case kafka.EventOrderCancelled:
		return fmt.Sprintf("Order #%d cancelled", event.OrderID), nil
	default:
		return "", fmt.Errorf("unknown event type %q", event.Type)
	}
}
