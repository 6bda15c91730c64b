// Package friendship 实现好友关系业务逻辑
// 关系由规范化无序对 (low_id, high_id) 唯一标识，状态流转规则：
//   - 不存在 -> Pending：任意用户对另一用户发起，幂等
//   - Pending -> Accepted/Rejected：仅接收方
//   - Accepted -> Blocked：双方均可，拉黑只能从已接受的关系发起
//   - Rejected/Blocked -> 任何状态：未开放
package friendship

import (
	"time"

	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	"github.com/seblyng/foodie/internal/dto/respond"
	"github.com/seblyng/foodie/internal/model"
	"github.com/seblyng/foodie/internal/notify"
	"github.com/seblyng/foodie/pkg/errorx"
	"github.com/seblyng/foodie/pkg/util/snowflake"
)

// friendshipService 好友关系业务逻辑实现
type friendshipService struct {
	repos    *repository.Repositories
	notifier notify.Notifier
}

// NewFriendshipService 构造函数
func NewFriendshipService(repos *repository.Repositories, notifier notify.Notifier) *friendshipService {
	return &friendshipService{repos: repos, notifier: notifier}
}

// RequestFriend 发起好友申请
// 两人之间已有任何关系记录（无论状态、无论方向）时本次申请是无操作：
// 不报错、不修改、不通知。并发互发申请由数据库主键保证恰有一条落库
func (s *friendshipService) RequestFriend(requesterID, recipientID uint) error {
	if requesterID == recipientID {
		return errorx.New(errorx.CodeInvalidParam, "不能添加自己为好友")
	}

	// 确认接收方存在
	if _, err := s.repos.User.FindByID(recipientID); err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return errorx.Newf(errorx.CodeUserNotExist, "用户不存在 id=%d", recipientID)
		}
		return err
	}

	low, high := model.CanonicalPair(requesterID, recipientID)
	created, err := s.repos.Friendship.Upsert(&model.Friendship{
		LowId:       low,
		HighId:      high,
		RequesterId: requesterID,
		RecipientId: recipientID,
		Status:      model.FriendshipPending,
		RequestedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	// 只有实际落库的申请才通知接收方
	if created {
		s.notifier.Notify(recipientID, notify.Event{
			Id:      snowflake.GenerateID(),
			Type:    notify.EventFriendRequest,
			ActorId: requesterID,
		})
	}
	return nil
}

// AcceptFriend 接受好友申请
func (s *friendshipService) AcceptFriend(userID, counterpartID uint) error {
	return s.setStatus(userID, counterpartID, model.FriendshipAccepted)
}

// RejectFriend 拒绝好友申请
func (s *friendshipService) RejectFriend(userID, counterpartID uint) error {
	return s.setStatus(userID, counterpartID, model.FriendshipRejected)
}

// BlockFriend 拉黑对方
func (s *friendshipService) BlockFriend(userID, counterpartID uint) error {
	return s.setStatus(userID, counterpartID, model.FriendshipBlocked)
}

// setStatus 状态流转的统一入口
// 先读当前状态做角色/状态校验，再以读到的状态为前置条件做受保护更新，
// 两个请求基于同一快照竞争时只有一个能成功，另一个收到 CodeNotFound
func (s *friendshipService) setStatus(userID, counterpartID uint, target model.FriendshipStatus) error {
	if userID == counterpartID {
		return errorx.New(errorx.CodeInvalidParam, "不能对自己执行好友操作")
	}

	friendship, err := s.repos.Friendship.FindByPair(userID, counterpartID)
	if err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return errorx.New(errorx.CodeNotFound, "好友关系不存在")
		}
		return err
	}

	switch friendship.Status {
	case model.FriendshipPending:
		// 待处理申请只有接收方能处理，且只能接受或拒绝
		if friendship.RecipientId != userID {
			return errorx.New(errorx.CodeForbidden, "只有接收方可以处理好友申请")
		}
		if target != model.FriendshipAccepted && target != model.FriendshipRejected {
			return errorx.New(errorx.CodeForbidden, "待处理申请只能接受或拒绝")
		}
	case model.FriendshipAccepted:
		// 已接受的关系只能流转到拉黑，双方均可
		if target != model.FriendshipBlocked {
			return errorx.New(errorx.CodeForbidden, "已接受的好友关系只能拉黑")
		}
	case model.FriendshipRejected, model.FriendshipBlocked:
		// 解除拉黑/重新申请的产品规则未定，显式拒绝而不是静默吞掉
		return errorx.Newf(errorx.CodeUnimplemented, "当前状态 %s 不支持变更", friendship.Status)
	default:
		return errorx.Newf(errorx.CodeServerBusy, "未知的好友关系状态 %d", friendship.Status)
	}

	low, high := model.CanonicalPair(userID, counterpartID)
	updated, err := s.repos.Friendship.UpdateStatusGuarded(
		low, high, friendship.Status, target, time.Now())
	if err != nil {
		return err
	}
	if !updated {
		// 读到的状态已被并发修改
		return errorx.New(errorx.CodeNotFound, "好友关系已变更，请刷新后重试")
	}
	return nil
}

// ListPending 列出收到的待处理申请
func (s *friendshipService) ListPending(userID uint) ([]respond.UserWithRelationRespond, error) {
	rows, err := s.repos.Friendship.PendingFor(userID)
	if err != nil {
		return nil, err
	}
	return toRelationResponds(rows), nil
}

// ListFriends 列出已接受的好友
func (s *friendshipService) ListFriends(userID uint) ([]respond.UserWithRelationRespond, error) {
	rows, err := s.repos.Friendship.AcceptedFor(userID)
	if err != nil {
		return nil, err
	}
	return toRelationResponds(rows), nil
}

// toRelationResponds 复合查询结果转响应
func toRelationResponds(rows []repository.UserWithRelation) []respond.UserWithRelationRespond {
	result := make([]respond.UserWithRelationRespond, 0, len(rows))
	for i := range rows {
		result = append(result, respond.UserWithRelationRespond{
			UserId:      rows[i].UserId,
			Name:        rows[i].Name,
			Email:       rows[i].Email,
			Status:      rows[i].Status,
			RequesterId: rows[i].RequesterId,
			RecipientId: rows[i].RecipientId,
		})
	}
	return result
}
