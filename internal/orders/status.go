package orders

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var knownStatuses = map[Status]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// ParseStatus normalizes to lowercase and rejects anything outside the five
// recognized values. Any known status may be set from any other; the
// dashboard does not restrict the transition graph.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !knownStatuses[st] {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

// Notified reports whether customers are told about a move to st.
func (s Status) Notified() bool {
	return s == StatusProcessing || s == StatusShipped || s == StatusDelivered
}

// NormalizeFilter maps the listing filter value to a store filter: "All"
// (any case) and empty mean no status restriction.
func NormalizeFilter(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "all") {
		return ""
	}
	return strings.ToLower(s)
}
