package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/cablemart/admin-api/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	Repo *catalog.Repo
}

func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
	r.Get("/products/{id}/variants", h.listVariants)
	r.Post("/products/{id}/variants", h.createVariant)
	r.Put("/variants/{id}", h.updateVariant)
	r.Delete("/variants/{id}", h.deleteVariant)

	r.Get("/merch", h.listMerch)
	r.Post("/merch", h.createMerch)
	r.Put("/merch/{id}", h.updateMerch)
	r.Delete("/merch/{id}", h.deleteMerch)

	r.Get("/collections", h.listCollections)
	r.Post("/collections", h.createCollection)
	r.Put("/collections/{id}", h.updateCollection)
	r.Delete("/collections/{id}", h.deleteCollection)

	r.Get("/discounts", h.listDiscounts)
	r.Post("/discounts", h.createDiscount)
	r.Put("/discounts/{id}", h.updateDiscount)
	r.Delete("/discounts/{id}", h.deleteDiscount)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.Repo.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if p.Name == "" {
		badRequest(w, "missing name")
		return
	}
	id, err := h.Repo.CreateProduct(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CatalogHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, "invalid json")
		return
	}
	p.ID = chi.URLParam(r, "id")
	if err := h.Repo.UpdateProduct(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": p.ID})
}

func (h *CatalogHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) listVariants(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListVariants(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) createVariant(w http.ResponseWriter, r *http.Request) {
	var v catalog.Variant
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		badRequest(w, "invalid json")
		return
	}
	v.ProductID = chi.URLParam(r, "id")
	id, err := h.Repo.CreateVariant(r.Context(), v)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CatalogHandler) updateVariant(w http.ResponseWriter, r *http.Request) {
	var v catalog.Variant
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		badRequest(w, "invalid json")
		return
	}
	v.ID = chi.URLParam(r, "id")
	if err := h.Repo.UpdateVariant(r.Context(), v); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": v.ID})
}

func (h *CatalogHandler) deleteVariant(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteVariant(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) listMerch(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListMerch(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) createMerch(w http.ResponseWriter, r *http.Request) {
	var m catalog.Merch
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if m.Name == "" {
		badRequest(w, "missing name")
		return
	}
	id, err := h.Repo.CreateMerch(r.Context(), m)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CatalogHandler) updateMerch(w http.ResponseWriter, r *http.Request) {
	var m catalog.Merch
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		badRequest(w, "invalid json")
		return
	}
	m.ID = chi.URLParam(r, "id")
	if err := h.Repo.UpdateMerch(r.Context(), m); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": m.ID})
}

func (h *CatalogHandler) deleteMerch(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteMerch(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) listCollections(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListCollections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) createCollection(w http.ResponseWriter, r *http.Request) {
	var c catalog.Collection
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		badRequest(w, "invalid json")
		return
	}
	id, err := h.Repo.CreateCollection(r.Context(), c)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CatalogHandler) updateCollection(w http.ResponseWriter, r *http.Request) {
	var c catalog.Collection
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		badRequest(w, "invalid json")
		return
	}
	c.ID = chi.URLParam(r, "id")
	if err := h.Repo.UpdateCollection(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": c.ID})
}

func (h *CatalogHandler) deleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteCollection(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) listDiscounts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListDiscounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) createDiscount(w http.ResponseWriter, r *http.Request) {
	var d catalog.Discount
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if d.Code == "" {
		badRequest(w, "missing code")
		return
	}
	id, err := h.Repo.CreateDiscount(r.Context(), d)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *CatalogHandler) updateDiscount(w http.ResponseWriter, r *http.Request) {
	var d catalog.Discount
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		badRequest(w, "invalid json")
		return
	}
	d.ID = chi.URLParam(r, "id")
	if err := h.Repo.UpdateDiscount(r.Context(), d); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": d.ID})
}

func (h *CatalogHandler) deleteDiscount(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteDiscount(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
