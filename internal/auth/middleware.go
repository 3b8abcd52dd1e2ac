package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gatehouse-io/gatehouse/internal/observability"
	"github.com/gatehouse-io/gatehouse/internal/shared"
)

// Middleware authenticates requests before they reach protected handlers.
type Middleware struct {
	Verifier *Verifier
	Logger   *slog.Logger
	Metrics  *observability.Metrics
}

// Authenticate verifies the Authorization header and attaches the resulting
// identity to the request context. Requests without a valid credential never
// reach the next handler.
func (m Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.Verifier.Verify(r.Header.Get("Authorization"))
		if err != nil {
			m.Metrics.CountDenial("authentication")
			if errors.Is(err, ErrMissingToken) {
				shared.JSON(w, http.StatusUnauthorized, shared.Message{Message: "Access Denied: No Token Provided"})
				return
			}
			if m.Logger != nil {
				m.Logger.Warn("token rejected", slog.String("path", r.URL.Path))
			}
			shared.JSON(w, http.StatusUnauthorized, shared.Message{Message: "Invalid Token"})
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithIdentity(r.Context(), identity)))
	})
}
