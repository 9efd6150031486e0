package redisx

import "time"

const (
	// Admin session token: session:{token} -> email
	KeySession = "session:%s"

	// Cache of an order's last known status: order_status:{order_id} -> status
	KeyOrderStatus = "order_status:%s"

	// Dedup for event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLStatusCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)
