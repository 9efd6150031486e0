package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusNormalizes(t *testing.T) {
	for _, in := range []string{"Processing", "PROCESSING", " processing "} {
		st, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, StatusProcessing, st)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "refunded", "ship"} {
		_, err := ParseStatus(in)
		assert.Error(t, err, in)
	}
}

func TestNormalizeFilter(t *testing.T) {
	assert.Equal(t, "", NormalizeFilter("All"))
	assert.Equal(t, "", NormalizeFilter("ALL"))
	assert.Equal(t, "", NormalizeFilter(""))
	assert.Equal(t, "shipped", NormalizeFilter("Shipped"))
}

func TestNotifiedStatuses(t *testing.T) {
	assert.True(t, StatusProcessing.Notified())
	assert.True(t, StatusShipped.Notified())
	assert.True(t, StatusDelivered.Notified())
	assert.False(t, StatusPending.Notified())
	assert.False(t, StatusCancelled.Notified())
}
