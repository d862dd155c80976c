package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/acquasitions/internal/config"
	"github.com/MKhiriev/acquasitions/internal/logger"
	"github.com/MKhiriev/acquasitions/internal/service"
	"github.com/MKhiriev/acquasitions/internal/store"
	"github.com/MKhiriev/acquasitions/internal/utils"
	"github.com/MKhiriev/acquasitions/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RootGreeting(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from acquasitions", rec.Body.String())
}

func TestInit_RootGreeting_IgnoresRequestContent(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/?name=bob", userToken, strings.NewReader(`{"x":1}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello from acquasitions", rec.Body.String())
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/", "", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodGet, "/accounts", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(t, h, http.MethodPost, "/users/1", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInit_MetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	rec := serveWith(router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serveWith(router, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "acquasitions_http_requests_total")
	assert.Contains(t, body, `route="/"`)
	assert.Contains(t, body, "go_goroutines")
}

func TestInit_NoMetricsPath(t *testing.T) {
	h, _ := newTestHandler(t)
	h.metricsPath = ""

	rec := serve(t, h, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WithoutSignKey(t *testing.T) {
	storages := &store.Storages{
		UserRepository: store.NewMemoryUserRepository(models.User{ID: 1, Name: "Alice", Email: "alice@example.com", Role: models.RoleAdmin}),
	}
	cfg := config.StructuredConfig{
		App:    config.App{TokenIssuer: "acquasitions", TokenDuration: time.Hour},
		Server: config.Server{MetricsPath: "/metrics"},
	}
	h, err := NewHandler(service.NewServices(storages, cfg, logger.Nop()), cfg.Server, logger.Nop())
	require.NoError(t, err)
	router := h.Init()

	rec := serveWith(router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveWith(router, http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[{"id":1,"name":"Alice","email":"alice@example.com","role":"admin","created_at":"0001-01-01T00:00:00Z","updated_at":"0001-01-01T00:00:00Z"}],"count":1}`, rec.Body.String())

	token, err := utils.GenerateJWTToken("acquasitions", models.User{ID: 1, Role: models.RoleAdmin}, time.Hour, "some-key")
	require.NoError(t, err)
	rec = serveWith(router, http.MethodGet, "/users/1", token.SignedString, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
