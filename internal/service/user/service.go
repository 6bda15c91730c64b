// Package user 实现用户查询业务逻辑
package user

import (
	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	"github.com/seblyng/foodie/internal/dto/respond"
	"github.com/seblyng/foodie/pkg/errorx"
)

// userService 用户业务逻辑实现
type userService struct {
	repos *repository.Repositories
}

// NewUserService 构造函数
func NewUserService(repos *repository.Repositories) *userService {
	return &userService{repos: repos}
}

// GetUserInfo 获取用户信息
func (s *userService) GetUserInfo(userID uint) (*respond.GetUserInfoRespond, error) {
	user, err := s.repos.User.FindByID(userID)
	if err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return nil, errorx.Newf(errorx.CodeUserNotExist, "用户不存在 id=%d", userID)
		}
		return nil, err
	}
	return &respond.GetUserInfoRespond{
		UserId:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// ListUsers 列出除当前用户外的所有用户及其与当前用户的关系
// 用于加好友页面：未建立关系的用户 status 为 null，
// 前端据 status 和申请方向渲染可执行的操作
func (s *userService) ListUsers(currentUserID uint, search string) ([]respond.UserWithRelationRespond, error) {
	rows, err := s.repos.Friendship.ListRelationships(currentUserID, search)
	if err != nil {
		return nil, err
	}

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
	return result, nil
}
