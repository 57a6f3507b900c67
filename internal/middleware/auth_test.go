package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/studylink/studylink-backend/pkg/jwt"
)

func setupAuthTestRouter(jwtManager *jwt.Manager) (*gin.Engine, *int64) {
	gin.SetMode(gin.TestMode)
	var capturedUserID int64

	router := gin.New()
	router.GET("/protected", JWTAuth(jwtManager), func(c *gin.Context) {
		capturedUserID = GetUserID(c)
		c.Status(http.StatusOK)
	})
	return router, &capturedUserID
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	m := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	router, _ := setupAuthTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	m := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	router, _ := setupAuthTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	m := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	router, _ := setupAuthTestRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := jwt.NewManager("test-secret", -time.Minute, 24*time.Hour)
	router, _ := setupAuthTestRouter(expired)

	token, err := expired.GenerateAccessToken(7, "Alice", "a@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidTokenSetsUserID(t *testing.T) {
	m := jwt.NewManager("test-secret", 15*time.Minute, 24*time.Hour)
	router, capturedUserID := setupAuthTestRouter(m)

	token, err := m.GenerateAccessToken(7, "Alice", "a@example.com")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), *capturedUserID)
}

func TestGetUserID_AbsentReturnsZero(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, int64(0), GetUserID(c))
}
