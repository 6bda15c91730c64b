// Package websocket 管理 WebSocket 长连接
// Hub 维护在线用户连接表，通知事件经由 Hub 推送给在线用户
package websocket

import (
	"net/http"
	"sync"
	"time"

	"github.com/seblyng/foodie/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 检查连接的Origin头
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client 单个用户的 WebSocket 连接
type Client struct {
	conn   *websocket.Conn
	userId uint
	send   chan []byte
}

// Hub 在线连接管理器
// 每个用户最多一条活跃连接，新连接会替换旧连接
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]*Client
}

// NewHub 创建连接管理器
func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]*Client),
	}
}

// Register 登记用户连接，已有连接时关闭旧连接
// send 通道的关闭都在写锁内进行，与 Deliver 的读锁互斥，
// 保证不会向已关闭的通道发送
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	if old := h.clients[client.userId]; old != nil {
		close(old.send)
	}
	h.clients[client.userId] = client
	h.mu.Unlock()

	zap.L().Info("ws连接成功", zap.Uint("user_id", client.userId))
}

// Unregister 注销用户连接
// 仅当连接表中仍是该连接时才移除，避免误删替换后的新连接
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if h.clients[client.userId] == client {
		delete(h.clients, client.userId)
		close(client.send)
	}
	h.mu.Unlock()
}

// Deliver 向在线用户投递消息，返回是否投递成功
// 用户不在线或发送缓冲已满时直接丢弃
func (h *Hub) Deliver(userID uint, payload []byte) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	client := h.clients[userID]
	if client == nil {
		return false
	}
	select {
	case client.send <- payload:
		return true
	default:
		zap.L().Warn("ws发送缓冲已满，事件丢弃", zap.Uint("user_id", userID))
		return false
	}
}

// Online 检查用户是否在线
func (h *Hub) Online(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// NewClientInit 升级 HTTP 连接为 WebSocket 并登记到 Hub
// JWT 中间件已完成认证，userID 来自令牌
func (h *Hub) NewClientInit(c *gin.Context, userID uint) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws升级失败", zap.Error(err))
		return
	}
	client := &Client{
		conn:   conn,
		userId: userID,
		send:   make(chan []byte, constants.CHANNEL_SIZE),
	}
	h.Register(client)
	go client.write()
	go client.read(h)
}

// read 读取循环，客户端不上行业务消息，仅用于感知连接断开
func (c *Client) read(h *Hub) {
	defer func() {
		h.Unregister(c)
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// write 写入循环，从 send 通道取事件推送给前端
func (c *Client) write() {
	defer func() {
		_ = c.conn.Close()
	}()
	for payload := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			zap.L().Error("ws写入失败", zap.Uint("user_id", c.userId), zap.Error(err))
			return
		}
	}
	// send 通道被关闭，说明连接已被替换或注销
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
