package rbac

import (
	"log/slog"
	"net/http"

	"github.com/gatehouse-io/gatehouse/internal/auth"
	"github.com/gatehouse-io/gatehouse/internal/observability"
	"github.com/gatehouse-io/gatehouse/internal/shared"
)

// Middleware wires role and permission gates for HTTP handlers. The checks
// themselves are pure; translating a deny into the Forbidden response
// happens here.
type Middleware struct {
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

// RequireRole ensures the caller's role is in the allowed set.
func (m Middleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := auth.IdentityFromContext(r.Context())
			if !HasRole(id, roles...) {
				m.deny(w, r, id, "role_gate")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermissions ensures the caller holds every listed permission.
func (m Middleware) RequirePermissions(perms ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := auth.IdentityFromContext(r.Context())
			if !HasAllPermissions(id, perms...) {
				m.deny(w, r, id, "permission_gate")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m Middleware) deny(w http.ResponseWriter, r *http.Request, id *auth.Identity, stage string) {
	m.Metrics.CountDenial(stage)
	if m.Logger != nil {
		role := ""
		if id != nil {
			role = id.Role.Name
		}
		m.Logger.Warn("authorization denied",
			slog.String("stage", stage),
			slog.String("role", role),
			slog.String("path", r.URL.Path))
	}
	shared.JSON(w, http.StatusForbidden, shared.Message{Message: "Access denied!"})
}
