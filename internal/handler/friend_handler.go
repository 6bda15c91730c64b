// Package handler 提供 HTTP 请求处理器
// 本文件处理好友关系相关的 API 请求
package handler

import (
	"github.com/seblyng/foodie/internal/service"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友关系请求处理器
type FriendHandler struct {
	friendSvc service.FriendshipService
}

// NewFriendHandler 构造函数
func NewFriendHandler(friendSvc service.FriendshipService) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc}
}

// RequestFriend 发起好友申请
// POST /friends/new/:recipientId
// 响应: nil
func (h *FriendHandler) RequestFriend(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	recipientID, ok := ParseUintParam(c, "recipientId")
	if !ok {
		return
	}
	if err := h.friendSvc.RequestFriend(userID, recipientID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// AcceptFriend 接受好友申请
// POST /friends/accept/:counterpartId
// 响应: nil
func (h *FriendHandler) AcceptFriend(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	counterpartID, ok := ParseUintParam(c, "counterpartId")
	if !ok {
		return
	}
	if err := h.friendSvc.AcceptFriend(userID, counterpartID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// RejectFriend 拒绝好友申请
// POST /friends/reject/:counterpartId
// 响应: nil
func (h *FriendHandler) RejectFriend(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	counterpartID, ok := ParseUintParam(c, "counterpartId")
	if !ok {
		return
	}
	if err := h.friendSvc.RejectFriend(userID, counterpartID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// BlockFriend 拉黑
// POST /friends/block/:counterpartId
// 响应: nil
func (h *FriendHandler) BlockFriend(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	counterpartID, ok := ParseUintParam(c, "counterpartId")
	if !ok {
		return
	}
	if err := h.friendSvc.BlockFriend(userID, counterpartID); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// ListPending 列出收到的待处理申请
// GET /friends/pending
// 响应: []respond.UserWithRelationRespond
func (h *FriendHandler) ListPending(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	data, err := h.friendSvc.ListPending(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListFriends 列出已接受的好友
// GET /friends
// 响应: []respond.UserWithRelationRespond
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID, ok := CurrentUserId(c)
	if !ok {
		return
	}
	data, err := h.friendSvc.ListFriends(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
