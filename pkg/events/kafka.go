package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher publishes transfer events to a Kafka topic as JSON.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher writing to the given brokers
// and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish writes the message to the topic, keyed by transaction ID when the
// payload carries one so that events for a transaction stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, message Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var key []byte
	if payload, ok := message.Payload.(TransferPayload); ok {
		key = []byte(payload.TransactionID)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{Key: key, Value: data})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Make sure we conform to the interface.
var _ Publisher = (*KafkaPublisher)(nil)
