// Package events publishes ingest notifications to Kafka so downstream
// reporting consumers can react without polling the database.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/teds/teds/internal/domain/extract"
)

// Publisher emits extract-ingested events. Publishing is asynchronous and
// best-effort; a broker outage never fails an ingest.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger zerolog.Logger
}

// NewPublisher connects to the given brokers.
func NewPublisher(brokers []string, topic string, logger zerolog.Logger) (*Publisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{client: client, topic: topic, logger: logger}, nil
}

type extractIngestedEvent struct {
	ExtractID         string    `json:"extract_id"`
	ProviderID        string    `json:"provider_id"`
	RecordGroup       string    `json:"record_group"`
	Status            string    `json:"status"`
	RecordCount       int       `json:"record_count"`
	FailedRecordCount int       `json:"failed_record_count"`
	WarnedRecordCount int       `json:"warned_record_count"`
	SubmittedAt       time.Time `json:"submitted_at"`
}

// ExtractIngested implements extract.EventPublisher.
func (p *Publisher) ExtractIngested(ctx context.Context, e *extract.Extract) {
	payload, err := json.Marshal(extractIngestedEvent{
		ExtractID:         e.ID.String(),
		ProviderID:        e.ProviderID,
		RecordGroup:       e.RecordGroup,
		Status:            string(e.Status),
		RecordCount:       len(e.Records),
		FailedRecordCount: e.FailedRecordCount(),
		WarnedRecordCount: e.WarnedRecordCount(),
		SubmittedAt:       e.SubmittedAt,
	})
	if err != nil {
		p.logger.Error().Err(err).Msg("marshal extract-ingested event")
		return
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(e.ID.String()),
		Value: payload,
	}
	p.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if err != nil {
			p.logger.Error().Err(err).Str("extract_id", e.ID.String()).Msg("publish extract-ingested event")
		}
	})
}

// Close flushes pending events and releases the client.
func (p *Publisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
