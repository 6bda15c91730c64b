// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"errors"
	"time"

	"github.com/seblyng/foodie/internal/model"
	"github.com/seblyng/foodie/pkg/errorx"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ==================== 错误包装辅助函数 ====================

// wrapDBError 包装数据库错误
// 根据错误类型返回不同的错误码：
//   - ErrRecordNotFound -> CodeNotFound
//   - 其他错误 -> CodeDBError
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf 包装数据库错误（支持格式化消息）
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByID 根据 ID 查找用户
	FindByID(id uint) (*model.UserInfo, error)
	// FindByEmail 根据邮箱查找用户
	FindByEmail(email string) (*model.UserInfo, error)
	// FindByIDs 批量根据 ID 查找用户
	FindByIDs(ids []uint) ([]model.UserInfo, error)
	// Create 创建新用户
	Create(user *model.UserInfo) error
}

// UserWithRelation 用户及其与当前用户的好友关系（复合查询结果）
// Status 为 nil 表示两人之间不存在任何关系记录
type UserWithRelation struct {
	UserId      uint                    `gorm:"column:user_id"`
	Name        string                  `gorm:"column:name"`
	Email       string                  `gorm:"column:email"`
	Status      *model.FriendshipStatus `gorm:"column:status"`
	RequesterId *uint                   `gorm:"column:requester_id"`
	RecipientId *uint                   `gorm:"column:recipient_id"`
}

// FriendshipRepository 好友关系数据访问接口
// 所有按对操作均以规范化无序对 (low_id, high_id) 为键
type FriendshipRepository interface {
	// Upsert 幂等插入关系记录
	// 主键冲突时不做任何修改，返回 created=false；
	// 并发下同一对用户互发申请时恰有一条插入成功
	Upsert(f *model.Friendship) (created bool, err error)
	// FindByPair 按规范化对查找关系记录，参数顺序无关
	FindByPair(a, b uint) (*model.Friendship, error)
	// UpdateStatusGuarded 带状态前置条件的更新
	// 仅当当前状态仍为 from 时更新为 to，返回是否实际更新；
	// 返回 false 说明记录已被并发修改或不存在
	UpdateStatusGuarded(low, high uint, from, to model.FriendshipStatus, respondedAt time.Time) (updated bool, err error)
	// ListRelationships 列出除 userID 外的所有用户及其与 userID 的关系
	// search 非空时按昵称/邮箱模糊过滤（不区分大小写）
	ListRelationships(userID uint, search string) ([]UserWithRelation, error)
	// PendingFor 列出 recipientID 收到的待处理申请（申请人信息）
	PendingFor(recipientID uint) ([]UserWithRelation, error)
	// AcceptedFor 列出 userID 的已接受好友（对方用户信息）
	AcceptedFor(userID uint) ([]UserWithRelation, error)
	// AcceptedFriendIDs 列出 userID 所有已接受好友的 ID
	AcceptedFriendIDs(userID uint) ([]uint, error)
}

// RecipeIngredientRow 菜谱配料详情（复合查询结果，含配料名）
type RecipeIngredientRow struct {
	IngredientId uint             `gorm:"column:ingredient_id"`
	Name         string           `gorm:"column:name"`
	Unit         *model.Unit      `gorm:"column:unit"`
	Amount       *decimal.Decimal `gorm:"column:amount"`
}

// RecipeRepository 菜谱数据访问接口
// 可见性过滤在 SQL 中完成，未通过过滤的菜谱与不存在的菜谱不可区分
type RecipeRepository interface {
	// Create 创建菜谱
	Create(recipe *model.Recipe) error
	// FindVisible 按 ID 查找 viewerID 可见的菜谱
	// 可见条件：viewer 是作者，或作者在 friendIDs 中且可见性为好友可见
	FindVisible(id uint, viewerID uint, friendIDs []uint) (*model.Recipe, error)
	// ListVisible 列出 viewerID 可见的所有菜谱
	ListVisible(viewerID uint, friendIDs []uint) ([]model.Recipe, error)
	// FindByID 按 ID 查找菜谱（不做可见性过滤，仅限内部使用）
	FindByID(id uint) (*model.Recipe, error)
	// Update 更新菜谱
	Update(recipe *model.Recipe) error
	// Delete 软删除菜谱
	Delete(id uint) error
	// CreateLinks 批量创建菜谱-配料关联
	CreateLinks(links []model.RecipeIngredient) error
	// DeleteLinks 删除菜谱的所有配料关联
	DeleteLinks(recipeID uint) error
	// FindLinks 查找菜谱的配料详情（含配料名）
	FindLinks(recipeID uint) ([]RecipeIngredientRow, error)
}

// IngredientRepository 配料字典数据访问接口
type IngredientRepository interface {
	// EnsureByName 按名称获取配料，不存在则创建
	// 并发下同名配料最多创建一次
	EnsureByName(name string) (*model.Ingredient, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db         *gorm.DB             // GORM 数据库实例
	User       UserRepository       // 用户 Repository
	Friendship FriendshipRepository // 好友关系 Repository
	Recipe     RecipeRepository     // 菜谱 Repository
	Ingredient IngredientRepository // 配料 Repository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:         db,
		User:       NewUserRepository(db),
		Friendship: NewFriendshipRepository(db),
		Recipe:     NewRecipeRepository(db),
		Ingredient: NewIngredientRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
