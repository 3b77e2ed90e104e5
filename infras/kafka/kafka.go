package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecoparking/config"
	"ecoparking/infras/otel"
	"ecoparking/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	EventReservationCreated = "reservation.created"
	EventPaymentRecorded    = "payment.recorded"
	EventCitationIssued     = "citation.issued"
	EventCitationPaid       = "citation.paid"
)

const writeTimeout = 5 * time.Second

// Event is one ledger entry published for downstream consumers.
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func (e Event) ToKafkaMessage() (kafkaGo.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event %s: %w", e.Type, err)
	}

	return kafkaGo.Message{
		Key:   []byte(e.Key),
		Value: value,
		Headers: []kafkaGo.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}, nil
}

// DecodeEvent reads an event back, leaving the payload as raw JSON.
func DecodeEvent(msg kafkaGo.Message) (Event, json.RawMessage, error) {
	var envelope struct {
		Event
		Payload json.RawMessage `json:"payload"`
	}

	if err := json.Unmarshal(msg.Value, &envelope); err != nil {
		return Event{}, nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return envelope.Event, envelope.Payload, nil
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Consume(ctx context.Context, handler func(event Event, payload json.RawMessage)) error
	Close() error
}

type kafkaPublisherImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
	otel   otel.Otel
}

// New returns a publisher writing to the configured topic, or a no-op publisher when Kafka is disabled.
func New(cfg *config.Config, ot otel.Otel) Publisher {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Debug().Msg("Kafka disabled, ledger events are dropped")

		return noopPublisher{}
	}

	dialer := &kafkaGo.Dialer{
		Timeout:   writeTimeout,
		DualStack: true,
	}

	transport := &kafkaGo.Transport{}

	if cfg.Kafka.SASL.Username != "" {
		mechanism := plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
		dialer.SASLMechanism = mechanism
		transport.SASL = mechanism
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka publisher initialized")

	return &kafkaPublisherImpl{
		config: cfg,
		dialer: dialer,
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
		},
		otel: ot,
	}
}

func (k *kafkaPublisherImpl) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := k.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.EndWithError(&err)

	msgs := make([]kafkaGo.Message, 0, len(events))

	for _, event := range events {
		msg, err := event.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("Failed to convert event to Kafka message")

			return err
		}

		msgs = append(msgs, msg)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.writer.Topic).Msg("Failed to send events to Kafka")

		return fmt.Errorf("failed to send events to Kafka: %w", err)
	}

	return nil
}

// Consume reads the ledger topic until ctx is done.
func (k *kafkaPublisherImpl) Consume(ctx context.Context, handler func(event Event, payload json.RawMessage)) error {
	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       k.config.Kafka.Topic,
		GroupID:     k.config.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("failed to read message from Kafka: %w", err)
		}

		event, payload, err := DecodeEvent(msg)
		if err != nil {
			log.Error().Err(err).Int64("offset", msg.Offset).Msg("Skipping undecodable event")

			continue
		}

		handler(event, payload)
	}
}

func (k *kafkaPublisherImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ ...Event) error { return nil }

func (noopPublisher) Consume(ctx context.Context, _ func(Event, json.RawMessage)) error {
	<-ctx.Done()

	return nil
}

func (noopPublisher) Close() error { return nil }
