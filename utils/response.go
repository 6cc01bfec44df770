// file: utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionInvalidatedMsg 会话被撤销时的 403 响应文案。
// 移动端按子串 "session has been invalidated" 匹配并触发本地登出，
// 改动必须与客户端同步。
const SessionInvalidatedMsg = "Your session has been invalidated. Please login again."

// Success 200 成功响应，data 逐键合并到顶层，与历史 API 形状保持一致
func Success(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Created 201 创建成功
func Created(c *gin.Context, data gin.H) {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusCreated, body)
}

// Error 错误响应，统一 {"error": msg} 形状
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// AbortError 中间件专用：输出错误并终止后续 handler
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
