package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cablemart/admin-api/internal/orders"
	"github.com/cablemart/admin-api/internal/redisx"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type OrderService interface {
	List(ctx context.Context, f orders.Filter) ([]orders.Order, error)
	Get(ctx context.Context, id string) (orders.Order, error)
	Transition(ctx context.Context, orderID, status string, tr *orders.TrackingInfo) error
	UpdateNotes(ctx context.Context, id, notes string) error
}

type OrdersHandler struct {
	Svc   OrderService
	Redis *redis.Client // optional status cache
}

type statusReq struct {
	Status         string  `json:"status"`
	Courier        *string `json:"courier"`
	TrackingNumber *string `json:"tracking_number"`
	TrackingURL    *string `json:"tracking_url"`
}

type notesReq struct {
	AdminNotes string `json:"admin_notes"`
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/orders", h.list)
	r.Get("/orders/export", h.exportCSV)
	r.Get("/orders/{id}", h.get)
	r.Put("/orders/{id}/status", h.updateStatus)
	r.Put("/orders/{id}/notes", h.updateNotes)
}

func (h *OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	f := orders.Filter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}
	out, err := h.Svc.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *OrdersHandler) exportCSV(w http.ResponseWriter, r *http.Request) {
	f := orders.Filter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}
	out, err := h.Svc.List(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
	if err := orders.WriteCSV(w, out); err != nil {
		// headers already sent; nothing sane left to report
		return
	}
}

func (h *OrdersHandler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req statusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Status == "" {
		badRequest(w, "missing status")
		return
	}

	var tr *orders.TrackingInfo
	if req.Courier != nil || req.TrackingNumber != nil || req.TrackingURL != nil {
		tr = &orders.TrackingInfo{
			Courier:        req.Courier,
			TrackingNumber: req.TrackingNumber,
			TrackingURL:    req.TrackingURL,
		}
	}

	if err := h.Svc.Transition(r.Context(), id, req.Status, tr); err != nil {
		writeError(w, err)
		return
	}

	st, _ := orders.ParseStatus(req.Status)
	if h.Redis != nil {
		key := fmt.Sprintf(redisx.KeyOrderStatus, id)
		_ = h.Redis.Set(r.Context(), key, string(st), redisx.TTLStatusCache).Err()
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(st)})
}

func (h *OrdersHandler) updateNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req notesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if err := h.Svc.UpdateNotes(r.Context(), id, req.AdminNotes); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
