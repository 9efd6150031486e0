package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderUpdatePostsBothChannels(t *testing.T) {
	var paths []string
	var bodies []orderUpdateBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		var b orderUpdateBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		bodies = append(bodies, b)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, zap.NewNop())
	require.NoError(t, d.OrderUpdate(context.Background(), "shipped", "o1"))

	assert.Equal(t, []string{"/api/send-order-email", "/api/send-whatsapp"}, paths)
	for _, b := range bodies {
		assert.Equal(t, "shipped", b.Type)
		assert.Equal(t, "o1", b.OrderID)
	}
}

func TestOrderUpdateAttemptsSecondChannelAfterFailure(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/api/send-order-email" {
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, zap.NewNop())
	err := d.OrderUpdate(context.Background(), "delivered", "o2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "send-order-email")
	assert.Len(t, paths, 2)
}
