package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cablemart/admin-api/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderService struct {
	lastFilter orders.Filter
	lastStatus string
	lastTr     *orders.TrackingInfo
	list       []orders.Order
	err        error
}

func (f *fakeOrderService) List(_ context.Context, flt orders.Filter) ([]orders.Order, error) {
	f.lastFilter = flt
	return f.list, f.err
}

func (f *fakeOrderService) Get(_ context.Context, id string) (orders.Order, error) {
	if f.err != nil {
		return orders.Order{}, f.err
	}
	return orders.Order{ID: id}, nil
}

func (f *fakeOrderService) Transition(_ context.Context, orderID, status string, tr *orders.TrackingInfo) error {
	f.lastStatus = status
	f.lastTr = tr
	return f.err
}

func (f *fakeOrderService) UpdateNotes(context.Context, string, string) error { return f.err }

func newTestRouter(svc OrderService) http.Handler {
	r := NewRouter()
	h := &OrdersHandler{Svc: svc}
	h.Register(r)
	return r
}

func TestListPassesFilterThrough(t *testing.T) {
	svc := &fakeOrderService{}
	srv := httptest.NewServer(newTestRouter(svc))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders?status=All&q=rina")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, orders.Filter{Status: "All", Search: "rina"}, svc.lastFilter)
}

func TestUpdateStatusBuildsTrackingPatch(t *testing.T) {
	svc := &fakeOrderService{}
	srv := httptest.NewServer(newTestRouter(svc))
	defer srv.Close()

	body := `{"status":"Shipped","tracking_number":"TRK-7"}`
	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/orders/o1/status", strings.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Shipped", svc.lastStatus)
	require.NotNil(t, svc.lastTr)
	require.NotNil(t, svc.lastTr.TrackingNumber)
	assert.Equal(t, "TRK-7", *svc.lastTr.TrackingNumber)
	assert.Nil(t, svc.lastTr.Courier)
}

func TestUpdateStatusWithoutTrackingOmitsPatch(t *testing.T) {
	svc := &fakeOrderService{}
	srv := httptest.NewServer(newTestRouter(svc))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/orders/o1/status", strings.NewReader(`{"status":"pending"}`))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, svc.lastTr)
}

func TestUpdateStatusMissingStatus(t *testing.T) {
	svc := &fakeOrderService{}
	srv := httptest.NewServer(newTestRouter(svc))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodPut, srv.URL+"/orders/o1/status", strings.NewReader(`{}`))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUnknownOrderIs404(t *testing.T) {
	svc := &fakeOrderService{err: orders.ErrNotFound}
	srv := httptest.NewServer(newTestRouter(svc))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders/ghost")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportCSVSetsHeaders(t *testing.T) {
	svc := &fakeOrderService{list: []orders.Order{{OrderNumber: "CM-1", Status: orders.StatusPending}}}
	srv := httptest.NewServer(newTestRouter(svc))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/orders/export")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "orders.csv")
}
