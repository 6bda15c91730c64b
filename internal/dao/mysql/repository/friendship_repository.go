package repository

import (
	"strings"
	"time"

	"github.com/seblyng/foodie/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository 创建好友关系 Repository
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

// Upsert 幂等插入关系记录
// 以 (low_id, high_id) 主键做冲突检测，冲突时不做任何修改。
// RowsAffected 为 0 即说明记录已存在（本次未插入），
// 并发互发申请时由数据库保证恰有一方插入成功
func (r *friendshipRepository) Upsert(f *model.Friendship) (bool, error) {
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "low_id"}, {Name: "high_id"}},
		DoNothing: true,
	}).Create(f)
	if tx.Error != nil {
		return false, wrapDBErrorf(tx.Error, "创建好友申请 low=%d high=%d", f.LowId, f.HighId)
	}
	return tx.RowsAffected > 0, nil
}

// FindByPair 按规范化对查找关系记录，参数顺序无关
func (r *friendshipRepository) FindByPair(a, b uint) (*model.Friendship, error) {
	low, high := model.CanonicalPair(a, b)
	var friendship model.Friendship
	if err := r.db.Where("low_id = ? AND high_id = ?", low, high).First(&friendship).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友关系 low=%d high=%d", low, high)
	}
	return &friendship, nil
}

// UpdateStatusGuarded 带状态前置条件的更新
// WHERE 条件同时限定主键和读取时的状态，实现乐观并发控制：
// 两个请求基于同一快照竞争时，数据库保证只有一个 UPDATE 命中
func (r *friendshipRepository) UpdateStatusGuarded(low, high uint, from, to model.FriendshipStatus, respondedAt time.Time) (bool, error) {
	tx := r.db.Model(&model.Friendship{}).
		Where("low_id = ? AND high_id = ? AND status = ?", low, high, from).
		Updates(map[string]interface{}{
			"status":       to,
			"responded_at": respondedAt,
		})
	if tx.Error != nil {
		return false, wrapDBErrorf(tx.Error, "更新好友关系状态 low=%d high=%d", low, high)
	}
	return tx.RowsAffected > 0, nil
}

// ListRelationships 列出除 userID 外的所有用户及其与 userID 的关系
// 左连接好友关系表，连接条件覆盖两个申请方向，
// 没有关系记录的用户 status 为 NULL
func (r *friendshipRepository) ListRelationships(userID uint, search string) ([]UserWithRelation, error) {
	query := r.db.Table("user_info AS u").
		Select("u.id AS user_id, u.name, u.email, f.status, f.requester_id, f.recipient_id").
		Joins("LEFT JOIN friendship AS f ON (f.requester_id = ? AND f.recipient_id = u.id) OR (f.requester_id = u.id AND f.recipient_id = ?)", userID, userID).
		Where("u.id <> ?", userID).
		Where("u.deleted_at IS NULL")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(u.name) LIKE ? OR LOWER(u.email) LIKE ?", pattern, pattern)
	}

	var rows []UserWithRelation
	if err := query.Order("u.id").Scan(&rows).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户关系列表 user_id=%d", userID)
	}
	return rows, nil
}

// PendingFor 列出 recipientID 收到的待处理申请
// 只返回以 recipientID 为接收方的 Pending 记录，带申请人资料
func (r *friendshipRepository) PendingFor(recipientID uint) ([]UserWithRelation, error) {
	var rows []UserWithRelation
	err := r.db.Table("friendship AS f").
		Select("u.id AS user_id, u.name, u.email, f.status, f.requester_id, f.recipient_id").
		Joins("INNER JOIN user_info AS u ON u.id = f.requester_id").
		Where("f.recipient_id = ? AND f.status = ?", recipientID, model.FriendshipPending).
		Where("u.deleted_at IS NULL").
		Order("f.requested_at").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询待处理申请 recipient_id=%d", recipientID)
	}
	return rows, nil
}

// AcceptedFor 列出 userID 的已接受好友，带对方用户资料
// 连接条件匹配关系中相对 userID 的另一方
func (r *friendshipRepository) AcceptedFor(userID uint) ([]UserWithRelation, error) {
	var rows []UserWithRelation
	err := r.db.Table("friendship AS f").
		Select("u.id AS user_id, u.name, u.email, f.status, f.requester_id, f.recipient_id").
		Joins("INNER JOIN user_info AS u ON (u.id = f.requester_id AND f.recipient_id = ?) OR (u.id = f.recipient_id AND f.requester_id = ?)", userID, userID).
		Where("f.status = ?", model.FriendshipAccepted).
		Where("u.deleted_at IS NULL").
		Order("u.name").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询好友列表 user_id=%d", userID)
	}
	return rows, nil
}

// AcceptedFriendIDs 列出 userID 所有已接受好友的 ID
func (r *friendshipRepository) AcceptedFriendIDs(userID uint) ([]uint, error) {
	var friendships []model.Friendship
	err := r.db.Where("status = ? AND (requester_id = ? OR recipient_id = ?)",
		model.FriendshipAccepted, userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询好友ID列表 user_id=%d", userID)
	}

	ids := make([]uint, 0, len(friendships))
	for i := range friendships {
		ids = append(ids, friendships[i].Counterpart(userID))
	}
	return ids, nil
}
