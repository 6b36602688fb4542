// Package governance handles Kafka event production for organization
// governance events.
package governance

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// GovernanceProducer handles sending governance events to Kafka
type GovernanceProducer struct {
	Writer *kafka.Writer
}

// NewGovernanceProducer initializes a new Kafka writer for governance events
func NewGovernanceProducer(brokers []string, topic string) *GovernanceProducer {
	return &GovernanceProducer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish sends one governance event to the Kafka topic. The message
// key is the organization id so all events of one organization land on
// the same partition, in order.
func (p *GovernanceProducer) Publish(ctx context.Context, event GovernanceEvent) error {
	event.EventID = uuid.New().String()
	event.EventTime = time.Now().UTC()
	event.SchemaVersion = "v1"

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(event.OrgID, 10)),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *GovernanceProducer) Close() error {
	return p.Writer.Close()
}
