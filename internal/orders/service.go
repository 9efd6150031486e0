package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/cablemart/admin-api/internal/inventory"
	kafkax "github.com/cablemart/admin-api/internal/kafka"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type OrderStore interface {
	Get(ctx context.Context, id string) (Order, error)
	Items(ctx context.Context, orderID string) ([]Item, error)
	List(ctx context.Context, f Filter) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, st Status, p StatusPatch) error
	UpdateNotes(ctx context.Context, id, notes string) error
}

type StockStore interface {
	Lookup(ctx context.Context, productID, variantID string) (inventory.Ref, int, error)
	Write(ctx context.Context, ref inventory.Ref, stock int) error
}

// Notifier sends the customer-facing order-update messages. Errors are
// logged by the caller and never fail a transition.
type Notifier interface {
	OrderUpdate(ctx context.Context, status, orderID string) error
}

type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type Service struct {
	Orders  OrderStore
	Stock   StockStore
	Notify  Notifier
	Events  Publisher // optional
	Service string
	Log     *zap.Logger
}

// Transition moves an order to the given status and applies the status's
// side effects.
//
// "processing" decrements stock for every line item before the status is
// written: one read and one write per item, each its own round trip, no
// transaction across items. An inventory failure aborts the whole call and
// the status stays as it was — but lines already decremented in the same
// loop stay decremented, and running "processing" twice decrements twice.
// Both are long-standing behavior the fulfillment flow relies on being able
// to see and fix by hand.
func (s *Service) Transition(ctx context.Context, orderID, rawStatus string, tr *TrackingInfo) error {
	st, err := ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	ord, err := s.Orders.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}

	if st == StatusProcessing {
		items, err := s.Orders.Items(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}
		for _, it := range items {
			ref, stock, err := s.Stock.Lookup(ctx, it.ProductID, it.VariantID)
			if err != nil {
				return err
			}
			if err := s.Stock.Write(ctx, ref, stock-it.Qty); err != nil {
				return err
			}
		}
	}

	patch := StatusPatch{Tracking: tr}
	now := time.Now().UTC()
	switch st {
	case StatusShipped:
		patch.ShippedAt = &now
	case StatusDelivered:
		patch.DeliveredAt = &now
	}

	if err := s.Orders.UpdateStatus(ctx, orderID, st, patch); err != nil {
		return err
	}

	if st.Notified() {
		if err := s.Notify.OrderUpdate(ctx, string(st), orderID); err != nil {
			s.Log.Warn("order notification failed",
				zap.String("order_id", orderID), zap.String("status", string(st)), zap.Error(err))
		}
	}

	s.publishStatusChanged(ord, st)
	return nil
}

func (s *Service) publishStatusChanged(ord Order, st Status) {
	if s.Events == nil {
		return
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderStatusChanged,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.Service,
		CorrelationID: ord.ID,
		Payload: kafkax.MustMarshal(OrderStatusChangedPayload{
			OrderID:     ord.ID,
			OrderNumber: ord.OrderNumber,
			OldStatus:   ord.Status,
			NewStatus:   st,
		}),
	}
	s.Events.Publish(PartitionKey(ord.ID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderStatusChanged)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

// List returns filtered orders with every line annotated with its current
// stock count, probed live per item. Probe failures leave the annotation
// empty; the listing itself still renders.
func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	f.Status = NormalizeFilter(f.Status)
	out, err := s.Orders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range out {
		for j := range out[i].Items {
			it := &out[i].Items[j]
			_, stock, err := s.Stock.Lookup(ctx, it.ProductID, it.VariantID)
			if err != nil {
				s.Log.Debug("stock probe failed", zap.String("item_id", it.ID), zap.Error(err))
				continue
			}
			n := stock
			it.StockLeft = &n
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	return s.Orders.Get(ctx, id)
}

func (s *Service) UpdateNotes(ctx context.Context, id, notes string) error {
	return s.Orders.UpdateNotes(ctx, id, notes)
}
