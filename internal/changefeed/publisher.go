package changefeed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"

	"github.com/aditya26raj01/status-app-backend/internal/domain"
	"github.com/aditya26raj01/status-app-backend/pkg/logger"
)

// Publisher mirrors committed change records to a Kafka topic for external
// integrations. It is strictly best-effort: publish failures are logged and
// never surfaced to the caller, and a nil Publisher is safe to use.
type Publisher struct {
	client *kgo.Client
	topic  string
}

// Config holds Kafka publisher configuration
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// NewPublisher connects a Kafka producer. Returns an error only when the
// client cannot be constructed; broker availability is checked lazily.
func NewPublisher(cfg Config) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ClientID(cfg.ClientID),
		kgo.DefaultProduceTopic(cfg.Topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Publisher{client: client, topic: cfg.Topic}, nil
}

// Publish sends one change record, keyed by org ID so records for the same
// tenant stay ordered within a partition. Fire-and-forget.
func (p *Publisher) Publish(ctx context.Context, entry *domain.ChangeLog) {
	if p == nil || p.client == nil {
		return
	}

	value, err := json.Marshal(entry)
	if err != nil {
		logger.Error("marshal change record for changefeed", zap.Error(err), zap.String("change_id", entry.ID))
		return
	}

	record := &kgo.Record{
		Key:   []byte(entry.OrgID),
		Value: value,
	}
	p.client.Produce(ctx, record, func(r *kgo.Record, err error) {
		if err != nil {
			logger.Warn("changefeed publish failed",
				zap.Error(err),
				zap.String("change_id", entry.ID),
				zap.String("entity_type", string(entry.EntityType)),
			)
		}
	})
}

// Close flushes pending records and releases the client
func (p *Publisher) Close(ctx context.Context) {
	if p == nil || p.client == nil {
		return
	}
	if err := p.client.Flush(ctx); err != nil {
		logger.Warn("changefeed flush on close", zap.Error(err))
	}
	p.client.Close()
}
