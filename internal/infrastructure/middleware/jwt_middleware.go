// Package middleware 提供 Gin 中间件
package middleware

import (
	"strings"

	"github.com/seblyng/foodie/pkg/errorx"
	"github.com/seblyng/foodie/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserIdKey JWT 认证通过后用户 ID 在 gin.Context 中的键名
const ContextUserIdKey = "user_id"

// JWTAuth JWT 认证中间件
// 从 Authorization 头解析 Bearer 令牌，认证通过后把用户 ID 写入 Context，
// 后续 Handler 通过 GetCurrentUserId 获取
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// WebSocket 握手无法自定义请求头，允许从查询参数取令牌
			if token := c.Query("token"); token != "" {
				authHeader = "Bearer " + token
			}
		}
		if authHeader == "" {
			abortUnauthorized(c, "缺少认证令牌")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "认证令牌格式错误")
			return
		}

		claims, err := jwt.ParseToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "认证令牌无效或已过期")
			return
		}

		c.Set(ContextUserIdKey, claims.UserID)
		c.Next()
	}
}

// GetCurrentUserId 从 Context 获取当前登录用户 ID
// 只能在 JWTAuth 之后的 Handler 中调用
func GetCurrentUserId(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIdKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// abortUnauthorized 以统一的响应格式返回未认证错误
func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(200, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}
