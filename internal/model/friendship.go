package model

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// FriendshipStatus 好友关系状态，领域内唯一的状态类型
// 数据库存储 int8 值，HTTP 层通过 MarshalJSON/UnmarshalJSON 使用字符串名称，
// 两侧映射均由下面的映射表驱动，避免在多处手写 switch 分支
type FriendshipStatus int8

const (
	FriendshipPending  FriendshipStatus = iota // 申请中，等待接收方处理
	FriendshipAccepted                         // 已成为好友
	FriendshipRejected                         // 已被拒绝
	FriendshipBlocked                          // 已拉黑
)

// friendshipStatusNames 状态 -> 线上名称（唯一的正向映射表）
var friendshipStatusNames = map[FriendshipStatus]string{
	FriendshipPending:  "Pending",
	FriendshipAccepted: "Accepted",
	FriendshipRejected: "Rejected",
	FriendshipBlocked:  "Blocked",
}

// friendshipStatusValues 线上名称 -> 状态，由正向表在 init 时反转生成
var friendshipStatusValues = make(map[string]FriendshipStatus, len(friendshipStatusNames))

func init() {
	for status, name := range friendshipStatusNames {
		friendshipStatusValues[name] = status
	}
}

// Valid 检查是否为已定义的状态值
func (s FriendshipStatus) Valid() bool {
	_, ok := friendshipStatusNames[s]
	return ok
}

// String 返回线上名称
func (s FriendshipStatus) String() string {
	if name, ok := friendshipStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("FriendshipStatus(%d)", int8(s))
}

// MarshalJSON 线上表示为字符串名称
func (s FriendshipStatus) MarshalJSON() ([]byte, error) {
	name, ok := friendshipStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown friendship status: %d", int8(s))
	}
	return []byte(strconv.Quote(name)), nil
}

// UnmarshalJSON 解析线上字符串名称
func (s *FriendshipStatus) UnmarshalJSON(data []byte) error {
	name, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("friendship status must be a string: %w", err)
	}
	status, ok := friendshipStatusValues[name]
	if !ok {
		return fmt.Errorf("unknown friendship status: %q", name)
	}
	*s = status
	return nil
}

// ParseFriendshipStatus 按线上名称解析状态
func ParseFriendshipStatus(name string) (FriendshipStatus, bool) {
	status, ok := friendshipStatusValues[name]
	return status, ok
}

// Friendship 好友关系模型
// 主键为规范化的无序对 (low_id, high_id)，low_id < high_id，
// 保证任意两个用户之间最多存在一行记录，与谁发起申请无关。
// requester_id/recipient_id 记录申请方向，仅用于状态流转的权限判断，
// 不参与关系存在性查询。
type Friendship struct {
	LowId       uint             `gorm:"column:low_id;primaryKey;autoIncrement:false;check:chk_friendship_pair,low_id < high_id;comment:较小的用户ID"`
	HighId      uint             `gorm:"column:high_id;primaryKey;autoIncrement:false;comment:较大的用户ID"`
	RequesterId uint             `gorm:"column:requester_id;not null;index;comment:申请人ID"`
	RecipientId uint             `gorm:"column:recipient_id;not null;index;comment:接收人ID"`
	Status      FriendshipStatus `gorm:"column:status;not null;comment:关系状态"`
	RequestedAt time.Time        `gorm:"column:requested_at;not null;comment:申请时间"`
	RespondedAt sql.NullTime     `gorm:"column:responded_at;comment:最近一次状态变更时间"`
}

// TableName 指定表名
func (Friendship) TableName() string {
	return "friendship"
}

// CanonicalPair 计算两个用户 ID 的规范化无序对 (min, max)
// 所有按对查询/写入好友关系的代码都必须经过这里
func CanonicalPair(a, b uint) (low, high uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// Counterpart 返回关系中相对 userID 的另一方
func (f *Friendship) Counterpart(userID uint) uint {
	if f.RequesterId == userID {
		return f.RecipientId
	}
	return f.RequesterId
}
