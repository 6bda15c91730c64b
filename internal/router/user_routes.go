// Package router 提供 HTTP 路由注册
// 本文件定义用户查询相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册用户相关路由（需要认证）
func (rt *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	// GET /me - 当前登录用户信息
	rg.GET("/me", rt.handlers.Auth.Me)
	// GET /users?search=xxx - 用户列表（含与当前用户的关系）
	rg.GET("/users", rt.handlers.User.ListUsers)
}
