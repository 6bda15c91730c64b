// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/seblyng/foodie/internal/handler"
	"github.com/seblyng/foodie/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合实例
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 构造函数
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 除注册/登录/刷新外的所有路由都在 JWT 认证之后
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterAuthRoutes(r)

	authorized := r.Group("/", middleware.JWTAuth())
	{
		rt.RegisterUserRoutes(authorized)
		rt.RegisterFriendRoutes(authorized)
		rt.RegisterRecipeRoutes(authorized)
		rt.RegisterWebSocketRoutes(authorized)
	}
}
