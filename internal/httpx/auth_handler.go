package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/cablemart/admin-api/internal/auth"
	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	Auth *auth.Service
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Post("/login", h.login)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid json")
		return
	}
	token, err := h.Auth.Login(r.Context(), req.Email, req.Password, req.Code)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// RequireSession guards the admin routes with the bearer token issued by
// /login.
func (h *AuthHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if _, err := h.Auth.Authenticate(r.Context(), token); err != nil {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
