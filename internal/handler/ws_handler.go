// Package handler 提供 HTTP 请求处理器
// 本文件处理 WebSocket 连接请求
package handler

import (
	"github.com/seblyng/foodie/internal/gateway/websocket"

	"github.com/gin-gonic/gin"
)

// WsHandler WebSocket 连接处理器
type WsHandler struct {
	hub *websocket.Hub
}

// NewWsHandler 构造函数
func NewWsHandler(hub *websocket.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// Connect 建立 WebSocket 连接
// GET /ws （握手时令牌放在 token 查询参数）
// 连接建立后服务端单向推送通知事件
func (h *WsHandler) Connect(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	h.hub.NewClientInit(c, userID)
}
