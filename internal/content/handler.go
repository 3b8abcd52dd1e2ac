package content

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gatehouse-io/gatehouse/internal/audit"
	"github.com/gatehouse-io/gatehouse/internal/auth"
	"github.com/gatehouse-io/gatehouse/internal/rbac"
	"github.com/gatehouse-io/gatehouse/internal/shared"
)

// Handler serves the role-filtered content routes.
type Handler struct {
	logger  *slog.Logger
	service *Service
	audit   *audit.Recorder
	rbac    rbac.Middleware
}

// NewHandler builds a content Handler.
func NewHandler(logger *slog.Logger, service *Service, recorder *audit.Recorder, rbacMW rbac.Middleware) *Handler {
	return &Handler{logger: logger, service: service, audit: recorder, rbac: rbacMW}
}

// MountRoutes registers content routes. The router mounts these behind the
// authentication middleware, so an identity is always present here.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.getByRole)
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequirePermissions(rbac.PermContentModerate))
		r.Get("/moderation", h.getModeration)
	})
}

func (h *Handler) getByRole(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		shared.JSON(w, http.StatusUnauthorized, shared.Message{Message: "Access Denied: No Token Provided"})
		return
	}
	items, err := h.service.FetchForRole(r.Context(), id.Role.Name)
	if err != nil {
		h.renderError(w, id.Role.Name, err)
		return
	}
	h.audit.Record(r.Context(), id.Subject, "content.fetch")
	shared.JSON(w, http.StatusOK, map[string]any{"contents": nonNil(items)})
}

// getModeration lists the caller's visible items that are also part of the
// moderation surface (visible to Moderators).
func (h *Handler) getModeration(w http.ResponseWriter, r *http.Request) {
	id := auth.IdentityFromContext(r.Context())
	if id == nil {
		shared.JSON(w, http.StatusUnauthorized, shared.Message{Message: "Access Denied: No Token Provided"})
		return
	}
	items, err := h.service.FetchForRole(r.Context(), id.Role.Name)
	if err != nil {
		h.renderError(w, id.Role.Name, err)
		return
	}
	moderated := make([]Item, 0, len(items))
	for _, item := range items {
		if item.VisibleTo(rbac.RoleModerator) {
			moderated = append(moderated, item)
		}
	}
	h.audit.Record(r.Context(), id.Subject, "content.moderation.view")
	shared.JSON(w, http.StatusOK, map[string]any{"contents": moderated})
}

func (h *Handler) renderError(w http.ResponseWriter, role string, err error) {
	if errors.Is(err, ErrNoContentForRole) {
		shared.JSON(w, http.StatusNotFound, shared.Message{Message: "No content available for your role."})
		return
	}
	if h.logger != nil {
		h.logger.Error("fetch content", slog.String("role", role), slog.Any("error", err))
	}
	shared.JSON(w, http.StatusInternalServerError, shared.Message{Message: "Internal server error."})
}

func nonNil(items []Item) []Item {
	if items == nil {
		return []Item{}
	}
	return items
}
