// Package handler 提供 HTTP 请求处理器
// 本文件处理用户查询相关的 API 请求
package handler

import (
	"github.com/seblyng/foodie/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户请求处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 构造函数
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers 列出用户及其与当前用户的关系
// GET /users?search=xxx
// 响应: []respond.UserWithRelationRespond
func (h *UserHandler) ListUsers(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	data, err := h.userSvc.ListUsers(userID, c.Query("search"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
