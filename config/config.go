// file: config/config.go
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     int
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	AllowedOrigins []string

	// 认证接口（注册/登录）的全局限流配置
	AuthRateLimitRequests   int
	AuthRateLimitWindowSecs int

	// 首次启动时自动创建的管理员账号
	AdminUsername string
	AdminPassword string
	AdminEmail    string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		ServerPort: getEnvString("PORT", "8080"),

		DBUser:     getEnvString("DB_USER", "root"),
		DBPassword: getEnvString("DB_PASSWORD", "123456"),
		DBHost:     getEnvString("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 3306),
		DBName:     getEnvString("DB_NAME", "qrhunt"),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: getEnvString("JWT_SECRET", "a-very-secure-secret-that-should-be-in-env"),

		AllowedOrigins: getEnvStringSlice("ALLOWED_ORIGINS", []string{"*"}),

		AuthRateLimitRequests:   getEnvInt("AUTH_RATE_LIMIT_REQUESTS", 30),
		AuthRateLimitWindowSecs: getEnvInt("AUTH_RATE_LIMIT_WINDOW_SECONDS", 60),

		AdminUsername: getEnvString("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvString("ADMIN_PASSWORD", ""),
		AdminEmail:    getEnvString("ADMIN_EMAIL", "admin@qrhunt.local"),
	}
}

// DSN 拼接 MySQL 连接串
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + strconv.Itoa(c.DBPort) + ")/" +
		c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local"
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
