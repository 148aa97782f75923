package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vagas/internal/telemetry"

	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("vagas/events")

const (
	SubjectJobCreated = "jobs.created"
	SubjectJobUpdated = "jobs.updated"
	SubjectJobDeleted = "jobs.deleted"
)

// JobEvent is the payload published on every job lifecycle subject.
type JobEvent struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Company    string    `json:"company"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

type NATSPublisher struct {
	logs *zap.SugaredLogger
	conn Conn
}

// ConnectNATS dials the NATS server at url and returns a publisher on top of it.
func ConnectNATS(logger *zap.SugaredLogger, url string, timeout time.Duration) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("vagas"),
		nats.Timeout(timeout),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warnw("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Infow("nats reconnected", "url", c.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	return NewNATSPublisher(logger, conn), nil
}

func NewNATSPublisher(logger *zap.SugaredLogger, conn Conn) *NATSPublisher {
	return &NATSPublisher{
		logs: logger,
		conn: conn,
	}
}

func (p *NATSPublisher) Publish(ctx context.Context, subject string, event any) error {
	_, span := tracer.Start(ctx, "NATSPublisher.Publish")
	defer span.End()
	span.SetAttributes(attribute.String("messaging.destination", subject))

	data, err := json.Marshal(event)
	if err != nil {
		return telemetry.Fail(span, fmt.Errorf("marshal event: %w", err))
	}

	if err := p.conn.Publish(subject, data); err != nil {
		return telemetry.Fail(span, fmt.Errorf("publish to %q: %w", subject, err))
	}

	p.logs.Debugw("event published", "subject", subject, "bytes", len(data))
	return nil
}

// Close flushes buffered messages before closing the connection.
func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		return fmt.Errorf("drain nats connection: %w", err)
	}
	return nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
