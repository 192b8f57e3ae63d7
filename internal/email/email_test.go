package email

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/Domenick1991/airlines/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	subject, err := Subject(kafka.OrderEvent{Type: kafka.EventOrderCreated, OrderID: 42, Tickets: 2})
	require.NoError(t, err)
	assert.Equal(t, "Order #42 confirmed: 2 ticket(s)", subject)

	subject, err = Subject(kafka.OrderEvent{Type: kafka.EventOrderCancelled, OrderID: 42})
	require.NoError(t, err)
	assert.Equal(t, "Order #42 cancelled", subject)

	_, err = Subject(kafka.OrderEvent{Type: kafka.EventFlightCompleted})
	assert.Error(t, err)
}

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSender(slog.New(slog.NewJSONHandler(&buf, nil)))

	err := sender.Send(context.Background(), kafka.OrderEvent{
		Type:      kafka.EventOrderCreated,
		OrderID:   42,
		UserID:    3,
		FlightIDs: []int64{7},
		Tickets:   1,
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"send notification"`)
	assert.Contains(t, buf.String(), `"order_id":42`)
	assert.Contains(t, buf.String(), `"user_id":3`)
}
