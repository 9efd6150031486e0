package audit

import (
	"context"
	"testing"
	"time"

	kafkax "github.com/cablemart/admin-api/internal/kafka"
	"github.com/cablemart/admin-api/internal/orders"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRecorder struct{ events []StatusEvent }

func (m *memRecorder) InsertStatusEvent(_ context.Context, ev StatusEvent) error {
	m.events = append(m.events, ev)
	return nil
}

type memDedup struct{ seen map[string]bool }

func (m *memDedup) Seen(_ context.Context, id string) (bool, error) { return m.seen[id], nil }
func (m *memDedup) Mark(_ context.Context, id string) error {
	if m.seen == nil {
		m.seen = map[string]bool{}
	}
	m.seen[id] = true
	return nil
}

func statusChangedMessage(eventID string) kafkago.Message {
	env := orders.Envelope{
		EventID:       eventID,
		EventType:     orders.EventOrderStatusChanged,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      "admin-api-test",
		CorrelationID: "o1",
		Payload: kafkax.MustMarshal(orders.OrderStatusChangedPayload{
			OrderID:   "o1",
			OldStatus: orders.StatusPending,
			NewStatus: orders.StatusProcessing,
		}),
	}
	return kafkago.Message{Value: kafkax.MustMarshal(env)}
}

func TestHandleStatusChangedRecordsEvent(t *testing.T) {
	rec := &memRecorder{}
	svc := &Service{Events: rec, Dedup: &memDedup{}, Log: zap.NewNop()}

	require.NoError(t, svc.HandleStatusChanged(context.Background(), statusChangedMessage(uuid.NewString())))
	require.Len(t, rec.events, 1)
	assert.Equal(t, "o1", rec.events[0].OrderID)
	assert.Equal(t, "pending", rec.events[0].OldStatus)
	assert.Equal(t, "processing", rec.events[0].NewStatus)
}

func TestHandleStatusChangedDeduplicates(t *testing.T) {
	rec := &memRecorder{}
	svc := &Service{Events: rec, Dedup: &memDedup{}, Log: zap.NewNop()}

	m := statusChangedMessage("ev-1")
	require.NoError(t, svc.HandleStatusChanged(context.Background(), m))
	require.NoError(t, svc.HandleStatusChanged(context.Background(), m))
	assert.Len(t, rec.events, 1)
}

func TestHandleStatusChangedIgnoresOtherEventTypes(t *testing.T) {
	rec := &memRecorder{}
	svc := &Service{Events: rec, Dedup: &memDedup{}, Log: zap.NewNop()}

	env := orders.Envelope{EventID: "x", EventType: "SomethingElse", Payload: kafkax.MustMarshal(struct{}{})}
	require.NoError(t, svc.HandleStatusChanged(context.Background(), kafkago.Message{Value: kafkax.MustMarshal(env)}))
	assert.Empty(t, rec.events)
}
