package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/cablemart/admin-api/internal/content"
	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	Repo *content.Repo
}

func (h *ContentHandler) Register(r chi.Router) {
	r.Get("/posts", h.listPosts)
	r.Post("/posts", h.createPost)
	r.Get("/posts/{id}", h.getPost)
	r.Put("/posts/{id}", h.updatePost)
	r.Delete("/posts/{id}", h.deletePost)

	r.Get("/reviews", h.listReviews)
	r.Put("/reviews/{id}/approved", h.setReviewApproved)
	r.Delete("/reviews/{id}", h.deleteReview)

	r.Get("/claims", h.listClaims)
	r.Put("/claims/{id}/status", h.setClaimStatus)

	r.Get("/subscriptions", h.listSubscriptions)
	r.Delete("/subscriptions/{id}", h.deleteSubscription)

	r.Get("/profiles", h.listProfiles)
	r.Put("/profiles/{id}/role", h.setProfileRole)
}

func (h *ContentHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListPosts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContentHandler) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := h.Repo.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ContentHandler) createPost(w http.ResponseWriter, r *http.Request) {
	var p content.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if p.Title == "" {
		badRequest(w, "missing title")
		return
	}
	id, err := h.Repo.CreatePost(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *ContentHandler) updatePost(w http.ResponseWriter, r *http.Request) {
	var p content.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		badRequest(w, "invalid json")
		return
	}
	p.ID = chi.URLParam(r, "id")
	if err := h.Repo.UpdatePost(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": p.ID})
}

func (h *ContentHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListReviews(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContentHandler) setReviewApproved(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Repo.SetReviewApproved(r.Context(), id, req.Approved); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ContentHandler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteReview(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) listClaims(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListClaims(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContentHandler) setClaimStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	if req.Status == "" {
		badRequest(w, "missing status")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Repo.SetClaimStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ContentHandler) listSubscriptions(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListSubscriptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContentHandler) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.DeleteSubscription(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) listProfiles(w http.ResponseWriter, r *http.Request) {
	out, err := h.Repo.ListProfiles(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ContentHandler) setProfileRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.Repo.SetProfileRole(r.Context(), id, req.Role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}
