// file: middlewares/auth.go
package middlewares

import (
	"QRHunt/database"
	"QRHunt/models"
	"QRHunt/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// JWTAuthMiddleware 校验 Bearer Token 的签名和有效期。
// 只做密码学校验，不查库；活跃性检查在 TeamAuthMiddleware 里完成。
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.AbortError(c, http.StatusUnauthorized, "No token provided")
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.AbortError(c, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.AbortError(c, http.StatusUnauthorized, "Token expired")
				return
			}
			utils.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set("claims", claims)
		c.Set("raw_token", parts[1])
		c.Next()
	}
}

// TeamAuthMiddleware 队伍身份校验，必须排在 JWTAuthMiddleware 之后。
// Token 签名有效只说明它曾被签发；这里再查一次队伍记录，
// 要求出示的 Token 与库中 active_token 严格相等——
// 登出、强制下线、密码重置都会清空 active_token，使旧 Token 在此处失效。
func TeamAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != models.RoleTeam {
			utils.AbortError(c, http.StatusForbidden, "Team access required")
			return
		}

		var team models.Team
		if err := database.DB.First(&team, claims.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.AbortError(c, http.StatusNotFound, "Team not found")
				return
			}
			utils.AbortError(c, http.StatusInternalServerError, "Error verifying team")
			return
		}

		if !team.Approved {
			utils.AbortError(c, http.StatusForbidden, "Team not approved yet")
			return
		}

		rawToken := c.GetString("raw_token")
		if team.ActiveToken == nil || *team.ActiveToken != rawToken {
			utils.AbortError(c, http.StatusForbidden, utils.SessionInvalidatedMsg)
			return
		}

		c.Set("team", &team)
		c.Next()
	}
}

// AdminAuthMiddleware 管理员身份校验，必须排在 JWTAuthMiddleware 之后。
// 每次都回查管理员记录，保证被删除的管理员立即失效。
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			utils.AbortError(c, http.StatusForbidden, "Admin access required")
			return
		}

		var admin models.Admin
		if err := database.DB.Where("username = ?", claims.Username).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.AbortError(c, http.StatusForbidden, "Admin access required")
				return
			}
			utils.AbortError(c, http.StatusInternalServerError, "Error verifying admin")
			return
		}

		c.Set("admin", &admin)
		c.Next()
	}
}

// GetClaims 读取 JWTAuthMiddleware 写入的 Claims，不存在时返回 nil
func GetClaims(c *gin.Context) *utils.Claims {
	claimsAny, exists := c.Get("claims")
	if !exists {
		return nil
	}
	claims, _ := claimsAny.(*utils.Claims)
	return claims
}
