package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkax "github.com/cablemart/admin-api/internal/kafka"
	"github.com/cablemart/admin-api/internal/orders"
	"github.com/cablemart/admin-api/internal/redisx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// StatusEvent is one row of the order status history timeline.
type StatusEvent struct {
	ID         string
	OrderID    string
	OldStatus  string
	NewStatus  string
	OccurredAt time.Time
}

type Recorder interface {
	InsertStatusEvent(ctx context.Context, ev StatusEvent) error
}

type Deduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

type RedisDedup struct {
	R       *redis.Client
	Service string
}

func (d *RedisDedup) Seen(ctx context.Context, eventID string) (bool, error) {
	return redisx.Exists(ctx, d.R, fmt.Sprintf(redisx.KeyDedup, d.Service, eventID))
}

func (d *RedisDedup) Mark(ctx context.Context, eventID string) error {
	return d.R.Set(ctx, fmt.Sprintf(redisx.KeyDedup, d.Service, eventID), "1", redisx.TTLDedup).Err()
}

// Service consumes OrderStatusChanged events and appends them to the status
// history table. Kafka redeliveries are filtered with a Redis dedup key per
// event id.
type Service struct {
	Events Recorder
	Dedup  Deduper
	Log    *zap.Logger
}

func (s *Service) HandleStatusChanged(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderStatusChanged {
		return nil // ignore
	}

	seen, err := s.Dedup.Seen(ctx, env.EventID)
	if err != nil {
		s.Log.Warn("dedup check failed", zap.Error(err))
	}
	if seen {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderStatusChangedPayload](env.Payload)
	if err != nil {
		return err
	}

	ev := StatusEvent{
		ID:         uuid.NewString(),
		OrderID:    p.OrderID,
		OldStatus:  string(p.OldStatus),
		NewStatus:  string(p.NewStatus),
		OccurredAt: env.OccurredAt,
	}
	if err := s.Events.InsertStatusEvent(ctx, ev); err != nil {
		return err
	}

	if err := s.Dedup.Mark(ctx, env.EventID); err != nil {
		s.Log.Warn("dedup mark failed", zap.Error(err))
	}
	s.Log.Info("status change recorded",
		zap.String("order_id", p.OrderID),
		zap.String("old", string(p.OldStatus)),
		zap.String("new", string(p.NewStatus)))
	return nil
}
