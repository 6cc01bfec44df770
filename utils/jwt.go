// file: utils/jwt.go
package utils

import (
	"QRHunt/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL Token 自身的有效期。单会话约束不依赖它，
// 只是兜底：没有管理员介入时，失联客户端占用的会话最长存活 24 小时。
const TokenTTL = 24 * time.Hour

var jwtSecret = []byte("a-very-secure-secret-that-should-be-in-env")

// SetJWTSecret 启动时从配置注入签名密钥
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

type Claims struct {
	ID       uint32      `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(id uint32, username string, role models.Role) (string, error) {
	return generateToken(id, username, role, TokenTTL)
}

func generateToken(id uint32, username string, role models.Role, ttl time.Duration) (string, error) {
	claims := Claims{
		ID:       id,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken 校验签名和有效期。过期错误保留 jwt.ErrTokenExpired，
// 中间件据此区分 "Token expired" 和 "Invalid token" 两类响应。
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
