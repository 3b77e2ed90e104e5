package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ecoparking/config"
	"ecoparking/infras/kafka"
	"ecoparking/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRoundTrip(t *testing.T) {
	occurred := time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC)
	event := kafka.Event{
		Type:       kafka.EventPaymentRecorded,
		Key:        "EP202405021030001234",
		OccurredAt: occurred,
		Payload:    map[string]any{"amount": "4.50", "method": "cash"},
	}

	msg, err := event.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("EP202405021030001234"), msg.Key)
	assert.Equal(t, "type", msg.Headers[0].Key)

	decoded, payload, err := kafka.DecodeEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, kafka.EventPaymentRecorded, decoded.Type)
	assert.True(t, occurred.Equal(decoded.OccurredAt))

	var body map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Equal(t, "4.50", body["amount"])
}

func TestDisabledPublisherDropsEvents(t *testing.T) {
	cfg := &config.Config{}

	publisher := kafka.New(cfg, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), kafka.Event{Type: kafka.EventCitationIssued}))
	assert.NoError(t, publisher.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, publisher.Consume(ctx, func(kafka.Event, json.RawMessage) {}))
}
