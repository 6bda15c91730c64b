// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"github.com/seblyng/foodie/internal/dto/request"
	"github.com/seblyng/foodie/internal/dto/respond"
)

// AuthService 认证业务接口
// 处理注册、登录、令牌刷新和登出
type AuthService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 密码登录
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken 用刷新令牌换取新令牌对（旧刷新令牌随即失效）
	RefreshToken(refreshToken string) (*respond.LoginRespond, error)
	// Logout 登出并吊销刷新令牌
	Logout(refreshToken string) error
}

// UserService 用户业务接口
type UserService interface {
	// GetUserInfo 获取用户信息
	GetUserInfo(userID uint) (*respond.GetUserInfoRespond, error)
	// ListUsers 列出除当前用户外的所有用户及其与当前用户的关系
	// search 非空时按昵称/邮箱模糊过滤
	ListUsers(currentUserID uint, search string) ([]respond.UserWithRelationRespond, error)
}

// FriendshipService 好友关系业务接口
// 关系以规范化无序对唯一标识，状态流转受角色约束
type FriendshipService interface {
	// RequestFriend 发起好友申请，重复申请是无操作
	RequestFriend(requesterID, recipientID uint) error
	// AcceptFriend 接受好友申请，仅接收方可调用
	AcceptFriend(userID, counterpartID uint) error
	// RejectFriend 拒绝好友申请，仅接收方可调用
	RejectFriend(userID, counterpartID uint) error
	// BlockFriend 拉黑，仅已接受的关系可拉黑，双方均可调用
	BlockFriend(userID, counterpartID uint) error
	// ListPending 列出收到的待处理申请
	ListPending(userID uint) ([]respond.UserWithRelationRespond, error)
	// ListFriends 列出已接受的好友
	ListFriends(userID uint) ([]respond.UserWithRelationRespond, error)
}

// RecipeService 菜谱业务接口
// 所有读取都经过可见性过滤，不可见与不存在不可区分
type RecipeService interface {
	// CreateRecipe 创建菜谱
	CreateRecipe(userID uint, req request.CreateRecipeRequest) (*respond.RecipeRespond, error)
	// GetRecipe 获取单个可见菜谱
	GetRecipe(viewerID, recipeID uint) (*respond.RecipeRespond, error)
	// ListRecipes 列出所有可见菜谱
	ListRecipes(viewerID uint) ([]respond.RecipeRespond, error)
	// UpdateRecipe 更新菜谱，仅作者可调用，完整替换内容和配料
	UpdateRecipe(userID, recipeID uint, req request.CreateRecipeRequest) (*respond.RecipeRespond, error)
	// DeleteRecipe 删除菜谱，仅作者可调用
	DeleteRecipe(userID, recipeID uint) error
	// GetUploadURL 生成图片上传预签名 URL
	GetUploadURL() (*respond.UploadImageRespond, error)
}

// ImageStorage 图片对象存储接口
// 生产实现为 MinIO，测试中可用内存桩替代
type ImageStorage interface {
	// PresignedUpload 生成上传预签名 URL
	PresignedUpload(objectName string) (string, error)
	// PresignedDownload 生成下载预签名 URL
	PresignedDownload(objectName string) (string, error)
	// Remove 删除图片对象
	Remove(objectName string) error
}
