// file: middlewares/auth_test.go
package middlewares

import (
	"QRHunt/models"
	"QRHunt/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 这里只覆盖不触达数据库的拒绝路径；
// 活跃性检查（active_token 相等比较）在 controllers 的会话测试里覆盖
func setupJWTRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	r := setupJWTRouter()

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	r := setupJWTRouter()

	w := doRequest(r, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	r := setupJWTRouter()

	w := doRequest(r, "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	r := setupJWTRouter()

	// 用同一密钥直接构造一个已过期的 Token
	claims := utils.Claims{
		ID:       1,
		Username: "expired",
		Role:     models.RoleTeam,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("middleware-test-secret"))
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	r := setupJWTRouter()

	token, err := utils.GenerateToken(5, "valid", models.RoleTeam)
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTeamAuthMiddleware_RejectsAdminRole(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/team-only", JWTAuthMiddleware(), TeamAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// 管理员 Token 在角色检查处就被拒绝，不会触达数据库
	token, err := utils.GenerateToken(1, "root", models.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/team-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Team access required")
}

func TestAdminAuthMiddleware_RejectsTeamRole(t *testing.T) {
	utils.SetJWTSecret("middleware-test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin-only", JWTAuthMiddleware(), AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	token, err := utils.GenerateToken(2, "crew", models.RoleTeam)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
}
