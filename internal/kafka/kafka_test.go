package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlightEvent(t *testing.T) {
	at := time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC)

	event := NewFlightEvent(EventFlightCompleted, 7, at)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventFlightCompleted, event.Type)
	assert.Equal(t, int64(7), event.FlightID)

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"flight_completed"`)
	assert.Contains(t, string(data), `"flight_id":7`)
}

func TestProducer_PublishRejectsUnmarshalable(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"})
	defer p.Close()

	err := p.Publish(context.Background(), "flights", "1", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal payload")
}

func TestProducer_CheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil)
	assert.Error(t, p.CheckConnection(context.Background()))
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}

func TestDecodeOrderEvent(t *testing.T) {
	at := time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC)
	data, err := json.Marshal(NewOrderEvent(EventOrderCreated, 42, 3, []int64{7, 9}, 2, at))
	require.NoError(t, err)

	event, err := DecodeOrderEvent(data)

	require.NoError(t, err)
	assert.Equal(t, EventOrderCreated, event.Type)
	assert.Equal(t, int64(42), event.OrderID)
	assert.Equal(t, []int64{7, 9}, event.FlightIDs)
	assert.True(t, at.Equal(event.OccurredAt))

	_, err = DecodeOrderEvent([]byte("{"))
	assert.Error(t, err)
}
