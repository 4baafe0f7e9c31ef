package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oakline-partners/internal/auth"
	"oakline-partners/internal/middleware"
	"oakline-partners/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	return cfg
}

// authRouter wires the auth middleware in front of a probe handler that
// echoes the claim values stored in the request context.
func authRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg))
	router.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"partner_id": c.GetString("partner_id"),
			"full_name":  c.GetString("full_name"),
			"email":      c.GetString("email"),
			"company":    c.GetString("company"),
		})
	})
	return router
}

func TestAuthMiddleware_ValidTokenExposesClaims(t *testing.T) {
	router := authRouter(testConfig())

	td, err := auth.GenerateJWT("partner-1", "Jordan Alvarez", "jordan@alvarezrealty.com", "Alvarez Realty Group", "active", testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+td.Token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var echoed map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echoed))
	assert.Equal(t, "partner-1", echoed["partner_id"])
	assert.Equal(t, "Jordan Alvarez", echoed["full_name"])
	assert.Equal(t, "jordan@alvarezrealty.com", echoed["email"])
	assert.Equal(t, "Alvarez Realty Group", echoed["company"])
}

func TestAuthMiddleware_MissingHeaderUnauthorized(t *testing.T) {
	router := authRouter(testConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeaderUnauthorized(t *testing.T) {
	router := authRouter(testConfig())

	for _, header := range []string{"Basic abc123", "Bearer", "token one two"} {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_WrongSignatureUnauthorized(t *testing.T) {
	router := authRouter(testConfig())

	td, err := auth.GenerateJWT("partner-1", "Jordan Alvarez", "jordan@alvarezrealty.com", "Alvarez Realty Group", "active", "a-different-secret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+td.Token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_GarbageTokenUnauthorized(t *testing.T) {
	router := authRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
