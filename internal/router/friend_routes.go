// Package router 提供 HTTP 路由注册
// 本文件定义好友关系相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友关系相关路由（需要认证）
func (rt *Router) RegisterFriendRoutes(rg *gin.RouterGroup) {
	friendGroup := rg.Group("/friends")
	{
		// GET /friends - 已接受的好友列表
		friendGroup.GET("", rt.handlers.Friend.ListFriends)
		// GET /friends/pending - 收到的待处理申请
		friendGroup.GET("/pending", rt.handlers.Friend.ListPending)
		// POST /friends/new/:recipientId - 发起好友申请
		friendGroup.POST("/new/:recipientId", rt.handlers.Friend.RequestFriend)
		// POST /friends/accept/:counterpartId - 接受申请
		friendGroup.POST("/accept/:counterpartId", rt.handlers.Friend.AcceptFriend)
		// POST /friends/reject/:counterpartId - 拒绝申请
		friendGroup.POST("/reject/:counterpartId", rt.handlers.Friend.RejectFriend)
		// POST /friends/block/:counterpartId - 拉黑
		friendGroup.POST("/block/:counterpartId", rt.handlers.Friend.BlockFriend)
	}
}
