// Package auth 实现注册、登录和令牌管理业务逻辑
// 访问令牌为短期 JWT，无状态校验；刷新令牌带 TokenID，
// 在 Redis 中登记，吊销即删除对应键
package auth

import (
	"time"

	"github.com/seblyng/foodie/internal/config"
	"github.com/seblyng/foodie/internal/dao/mysql/repository"
	myredis "github.com/seblyng/foodie/internal/dao/redis"
	"github.com/seblyng/foodie/internal/dto/request"
	"github.com/seblyng/foodie/internal/dto/respond"
	"github.com/seblyng/foodie/internal/model"
	"github.com/seblyng/foodie/pkg/errorx"
	"github.com/seblyng/foodie/pkg/util/jwt"

	"go.uber.org/zap"
)

// authService 认证业务逻辑实现
type authService struct {
	repos *repository.Repositories
}

// NewAuthService 构造函数
func NewAuthService(repos *repository.Repositories) *authService {
	return &authService{repos: repos}
}

// Register 用户注册
// 邮箱唯一，明文密码经 model 层 BeforeSave 钩子哈希后落库
func (s *authService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	// 先查重，给出友好错误；并发窗口内的重复注册由唯一索引兜底
	if _, err := s.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.Newf(errorx.CodeUserExist, "邮箱 %s 已被注册", req.Email)
	} else if !errorx.IsCode(err, errorx.CodeNotFound) {
		return nil, err
	}

	user := model.UserInfo{
		Name:        req.Name,
		Email:       req.Email,
		RawPassword: req.Password,
	}
	if err := s.repos.User.Create(&user); err != nil {
		return nil, err
	}

	zap.L().Info("用户注册成功", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return &respond.RegisterRespond{
		UserId: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}

// Login 密码登录，签发访问令牌和刷新令牌
func (s *authService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return nil, errorx.New(errorx.CodeUserNotExist, "用户不存在")
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "密码错误")
	}

	return s.issueTokens(user)
}

// RefreshToken 用刷新令牌换取新令牌对
// 刷新令牌一次一用：校验通过后立即吊销旧令牌再签发新对，
// 被吊销或过期的令牌换取时返回未授权
func (s *authService) RefreshToken(refreshToken string) (*respond.LoginRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "刷新令牌无效")
	}

	userID, ok, err := myredis.GetRefreshTokenUser(claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !ok || userID != claims.UserID {
		return nil, errorx.New(errorx.CodeUnauthorized, "刷新令牌已失效")
	}

	user, err := s.repos.User.FindByID(claims.UserID)
	if err != nil {
		if errorx.IsCode(err, errorx.CodeNotFound) {
			return nil, errorx.New(errorx.CodeUnauthorized, "用户不存在")
		}
		return nil, err
	}

	// 旧令牌作废，轮换为新令牌对
	if err := myredis.RevokeRefreshToken(claims.TokenID); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

// Logout 登出并吊销刷新令牌
// 令牌无法解析时按已登出处理，不报错
func (s *authService) Logout(refreshToken string) error {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil || claims.TokenID == "" {
		return nil
	}
	return myredis.RevokeRefreshToken(claims.TokenID)
}

// issueTokens 签发令牌对并在 Redis 中登记刷新令牌
func (s *authService) issueTokens(user *model.UserInfo) (*respond.LoginRespond, error) {
	accessToken, err := jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成访问令牌失败")
	}

	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "生成刷新令牌失败")
	}

	expiry := time.Duration(config.GetConfig().JWTConfig.RefreshTokenExpiry) * time.Hour
	if err := myredis.SaveRefreshToken(tokenID, user.ID, expiry); err != nil {
		return nil, err
	}

	return &respond.LoginRespond{
		UserId:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
