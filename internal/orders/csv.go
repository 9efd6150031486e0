package orders

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"order_number", "status", "shipping_name", "shipping_phone",
	"total_cents", "courier", "tracking_number", "created_at",
	"shipped_at", "delivered_at",
}

// WriteCSV renders a listing as CSV, one row per order. Same columns the
// dashboard's export button produced.
func WriteCSV(w io.Writer, list []Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, o := range list {
		rec := []string{
			o.OrderNumber,
			string(o.Status),
			o.ShippingName,
			o.ShippingPhone,
			strconv.Itoa(o.TotalCents),
			o.Courier,
			o.TrackingNumber,
			o.CreatedAt.UTC().Format(time.RFC3339),
			fmtTime(o.ShippedAt),
			fmtTime(o.DeliveredAt),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
