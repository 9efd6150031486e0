package orders

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	shipped := created.Add(48 * time.Hour)
	list := []Order{
		{
			OrderNumber:    "CM-1001",
			Status:         StatusShipped,
			ShippingName:   "Rina S",
			ShippingPhone:  "+62811000111",
			TotalCents:     125000,
			Courier:        "JNE",
			TrackingNumber: "TRK-9",
			CreatedAt:      created,
			ShippedAt:      &shipped,
		},
		{OrderNumber: "CM-1002", Status: StatusPending, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, list))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, csvHeader, recs[0])
	assert.Equal(t, "CM-1001", recs[1][0])
	assert.Equal(t, "shipped", recs[1][1])
	assert.Equal(t, "2026-03-16T09:30:00Z", recs[1][8])
	// nil timestamps render empty
	assert.Equal(t, "", recs[2][8])
	assert.Equal(t, "", recs[2][9])
}
