package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatehouse-io/gatehouse/internal/audit"
	"github.com/gatehouse-io/gatehouse/internal/auth"
	"github.com/gatehouse-io/gatehouse/internal/rbac"
	"github.com/gatehouse-io/gatehouse/internal/shared"
)

// Handler serves user directory routes.
type Handler struct {
	logger *slog.Logger
	repo   Repository
	audit  *audit.Recorder
	rbac   rbac.Middleware
}

// NewHandler builds a users Handler.
func NewHandler(logger *slog.Logger, repo Repository, recorder *audit.Recorder, rbacMW rbac.Middleware) *Handler {
	return &Handler{logger: logger, repo: repo, audit: recorder, rbac: rbacMW}
}

// MountRoutes registers user routes. The full listing sits behind the Admin
// role gate; the profile route only needs authentication.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/profile", h.profile)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireRole(rbac.RoleAdmin))
		r.Get("/all", h.listAll)
	})
}

// profile echoes the identity resolved from the verified credential.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		shared.JSON(w, http.StatusUnauthorized, shared.Message{Message: "Access Denied: No Token Provided"})
		return
	}
	shared.JSON(w, http.StatusOK, map[string]any{"user": id})
}

func (h *Handler) listAll(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		shared.JSON(w, http.StatusUnauthorized, shared.Message{Message: "Access Denied: No Token Provided"})
		return
	}
	list, err := h.repo.ListAll(r.Context())
	if err != nil {
		if h.logger != nil {
			h.logger.Error("list users", slog.Any("error", err))
		}
		shared.JSON(w, http.StatusInternalServerError, shared.Message{Message: "Fetching users failed"})
		return
	}
	if list == nil {
		list = []User{}
	}
	h.audit.Record(r.Context(), id.Subject, "users.list")
	shared.JSON(w, http.StatusOK, map[string]any{"users": list})
}
