package app_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatehouse-io/gatehouse/internal/app"
	"github.com/gatehouse-io/gatehouse/internal/audit"
	"github.com/gatehouse-io/gatehouse/internal/auth"
	"github.com/gatehouse-io/gatehouse/internal/content"
	"github.com/gatehouse-io/gatehouse/internal/observability"
	"github.com/gatehouse-io/gatehouse/internal/rbac"
	"github.com/gatehouse-io/gatehouse/internal/users"
	_ "github.com/gatehouse-io/gatehouse/testing"
)

const testSecret = "router-test-secret"

type contentRepoStub struct {
	items []content.Item
}

func (s *contentRepoStub) ListByRole(ctx context.Context, role string) ([]content.Item, error) {
	var visible []content.Item
	for _, item := range s.items {
		if item.VisibleTo(role) {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

type usersRepoStub struct {
	users []users.User
}

func (s *usersRepoStub) ListAll(ctx context.Context) ([]users.User, error) {
	return s.users, nil
}

// failingAuditRepo simulates an unavailable audit store; the pipeline must
// never let that failure reach a client.
type failingAuditRepo struct{}

func (failingAuditRepo) Insert(ctx context.Context, entry audit.Entry) error {
	return assert.AnError
}

func seedItems() []content.Item {
	return []content.Item{
		{Title: "Admin Dashboard", Description: "Detailed analytics and controls for administrators.", RoleAccess: []string{"Admin"}},
		{Title: "Moderator Panel", Description: "Tools for managing posts and moderating comments.", RoleAccess: []string{"Moderator", "Admin"}},
		{Title: "User Home", Description: "Personalized dashboard for users.", RoleAccess: []string{"User", "Moderator", "Admin"}},
	}
}

func newTestRouter(t *testing.T, items []content.Item) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()

	verifier := auth.NewVerifier(testSecret)
	authMiddleware := auth.Middleware{Verifier: verifier, Logger: logger, Metrics: metrics}
	rbacMiddleware := rbac.Middleware{Logger: logger, Metrics: metrics}

	recorder := audit.NewRecorder(nil, failingAuditRepo{}, logger)

	contentService := content.NewService(&contentRepoStub{items: items}, nil, content.ServiceConfig{})
	contentHandler := content.NewHandler(logger, contentService, recorder, rbacMiddleware)

	directory := []users.User{
		{ID: 1, Email: "admin@gatehouse.local", RoleName: "Admin"},
		{ID: 2, Email: "user@gatehouse.local", RoleName: "User"},
	}
	usersHandler := users.NewHandler(logger, &usersRepoStub{users: directory}, recorder, rbacMiddleware)

	return app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         &app.Config{AppRequestTimeout: 5 * time.Second},
		AuthMiddleware: authMiddleware,
		ContentHandler: contentHandler,
		UsersHandler:   usersHandler,
		Metrics:        metrics,
	})
}

func mintToken(t *testing.T, role auth.RoleClaim, subject string) string {
	t.Helper()
	claims := &auth.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doRequest(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestUserSeesOnlyUserContent(t *testing.T) {
	router := newTestRouter(t, seedItems())
	token := mintToken(t, auth.RoleClaim{Name: "User", Permissions: []string{}}, "u-1")

	res := doRequest(router, "/api/content", token)
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Contents []content.Item `json:"contents"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	names := make([]string, 0, len(body.Contents))
	for _, item := range body.Contents {
		names = append(names, item.Title)
	}
	assert.Contains(t, names, "User Home")
	assert.NotContains(t, names, "Admin Dashboard")
}

func TestMissingTokenRejected(t *testing.T) {
	router := newTestRouter(t, seedItems())

	res := doRequest(router, "/api/content", "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.JSONEq(t, `{"message":"Access Denied: No Token Provided"}`, res.Body.String())
}

func TestModeratorDeniedAdminListing(t *testing.T) {
	router := newTestRouter(t, seedItems())
	token := mintToken(t, auth.RoleClaim{Name: "Moderator"}, "m-1")

	res := doRequest(router, "/api/users/all", token)
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.JSONEq(t, `{"message":"Access denied!"}`, res.Body.String())
}

func TestAdminWithNoContentGetsNotFound(t *testing.T) {
	router := newTestRouter(t, nil)
	token := mintToken(t, auth.RoleClaim{Name: "Admin"}, "a-1")

	res := doRequest(router, "/api/content", token)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.JSONEq(t, `{"message":"No content available for your role."}`, res.Body.String())
}

func TestAuditStoreFailureDoesNotFailRequest(t *testing.T) {
	// The recorder in newTestRouter always fails its writes; the primary
	// response must be unaffected.
	router := newTestRouter(t, seedItems())
	token := mintToken(t, auth.RoleClaim{Name: "Admin"}, "a-1")

	res := doRequest(router, "/api/users/all", token)
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Users []users.User `json:"users"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.Len(t, body.Users, 2)
}

func TestInvalidTokenRejected(t *testing.T) {
	router := newTestRouter(t, seedItems())

	res := doRequest(router, "/api/content", "garbage.token.value")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.JSONEq(t, `{"message":"Invalid Token"}`, res.Body.String())
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, seedItems())

	res := doRequest(router, "/healthz", "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"status":"ok"}`, res.Body.String())
}
