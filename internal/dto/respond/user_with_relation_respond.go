package respond

import "github.com/seblyng/foodie/internal/model"

// UserWithRelationRespond 用户及其与当前用户的好友关系响应
// status 为 null 表示两人之间不存在任何关系记录；
// requester_id/recipient_id 标识申请方向，前端据此判断能否接受/拒绝
// 使用位置:
//   - internal/service/user/service.go: ListUsers
//   - internal/service/friendship/service.go: ListFriends, ListPending
type UserWithRelationRespond struct {
	UserId      uint                    `json:"user_id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Status      *model.FriendshipStatus `json:"status"`
	RequesterId *uint                   `json:"requester_id"`
	RecipientId *uint                   `json:"recipient_id"`
}
