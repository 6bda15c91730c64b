// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	"github.com/seblyng/foodie/internal/notify"
	"github.com/seblyng/foodie/internal/service/auth"
	"github.com/seblyng/foodie/internal/service/friendship"
	"github.com/seblyng/foodie/internal/service/recipe"
	"github.com/seblyng/foodie/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Auth       AuthService       // 认证 Service
	User       UserService       // 用户 Service
	Friendship FriendshipService // 好友关系 Service
	Recipe     RecipeService     // 菜谱 Service
}

// NewServices 创建并注入所有 Service 实例
// repos: Repository 层聚合实例
// notifier: 事件投递实现（进程内或 Kafka）
// storage: 图片对象存储实现
func NewServices(repos *repository.Repositories, notifier notify.Notifier, storage ImageStorage) *Services {
	return &Services{
		Auth:       auth.NewAuthService(repos),
		User:       user.NewUserService(repos),
		Friendship: friendship.NewFriendshipService(repos, notifier),
		Recipe:     recipe.NewRecipeService(repos, notifier, storage),
	}
}

// Svc 全局 Services 实例
var Svc *Services

// InitServices 初始化全局 Services 实例
// 应在 main.go 中调用，在 Repository 初始化之后
func InitServices(repos *repository.Repositories, notifier notify.Notifier, storage ImageStorage) {
	Svc = NewServices(repos, notifier, storage)
}
