package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/auth"
	"github.com/Viraj-016/buyhive-marketplace/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-for-middleware",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "buyhive-test",
		MaxRefreshCount:        10,
	})
}

func newTestEngine(cfg JWTMiddlewareConfig, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddleware(cfg))
	handlers := append(extra, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	engine.GET("/api/v1/cart", handlers...)
	engine.GET("/api/v1/products", handlers...)
	return engine
}

func issueToken(t *testing.T, svc *auth.JWTService, isVendor bool) (*auth.TokenPair, uuid.UUID) {
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   userID,
		Email:    "maya@example.com",
		IsVendor: isVendor,
	})
	require.NoError(t, err)
	return pair, userID
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService()

	t.Run("valid token passes and exposes the user id", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{JWTService: svc})
		pair, userID := issueToken(t, svc, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{JWTService: svc})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{JWTService: svc})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_INVALID")
	})

	t.Run("refresh token cannot be used as access token", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{JWTService: svc})
		pair, _ := issueToken(t, svc, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skip paths bypass authentication", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{
			JWTService: svc,
			SkipPaths:  []string{"/api/v1/products"},
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blacklisted token is rejected", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		engine := newTestEngine(JWTMiddlewareConfig{
			JWTService:     svc,
			TokenBlacklist: blacklist,
		})
		pair, _ := issueToken(t, svc, false)

		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})
}

func TestRequireVendor(t *testing.T) {
	svc := newTestJWTService()

	t.Run("vendor token is allowed", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{JWTService: svc}, RequireVendor())
		pair, _ := issueToken(t, svc, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-vendor token is forbidden", func(t *testing.T) {
		engine := newTestEngine(JWTMiddlewareConfig{JWTService: svc}, RequireVendor())
		pair, _ := issueToken(t, svc, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
