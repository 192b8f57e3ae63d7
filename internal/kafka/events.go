package kafka

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderCreated    = "order_created"
	EventOrderCancelled  = "order_cancelled"
	EventFlightCompleted = "flight_completed"
)

type OrderEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	FlightIDs  []int64   `json:"flight_ids"`
	Tickets    int       `json:"tickets"`
	OccurredAt time.Time `json:"occurred_at"`
}

type FlightEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	FlightID   int64     `json:"flight_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewFlightEvent(eventType string, flightID int64, at time.Time) FlightEvent {
	return FlightEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		FlightID:   flightID,
		OccurredAt: at,
	}
}

func NewOrderEvent(eventType string, orderID, userID int64, flightIDs []int64, tickets int, at time.Time) OrderEvent {
	return OrderEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OrderID:    orderID,
		UserID:     userID,
		FlightIDs:  flightIDs,
		Tickets:    tickets,
		OccurredAt: at,
	}
}
