package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cribsim-go/internal/auth"
	"cribsim-go/internal/config"
	"cribsim-go/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	hash, err := auth.HashAPIKey("test-api-key")
	require.NoError(t, err)
	return config.Config{
		JWTSecret:  "test-secret",
		JWTIssuer:  "cribsim-test",
		JWTTTL:     time.Hour,
		APIKeyHash: hash,
		AppEnv:     "development",
	}
}

func authRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	RegisterAuthRoutes(api, cfg)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(cfg))
	protected.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestTokenHandler(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	r := authRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"api_key":"test-api-key"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
}

func TestTokenHandlerRejects(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	r := authRouter(cfg)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`{"api_key":"wrong"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(`not json`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	r := authRouter(cfg)

	// No token.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer junk")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Freshly minted token.
	token, err := auth.GenerateToken("operator", cfg)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
