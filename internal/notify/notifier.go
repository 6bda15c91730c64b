// Package notify 定义实时通知事件和投递接口
// 事件投递是尽力而为的：接收方不在线时事件直接丢弃，
// 任何投递失败都不影响触发事件的业务操作
package notify

// EventType 通知事件类型
type EventType string

const (
	EventFriendRequest EventType = "FriendRequest" // 收到好友申请
	EventRecipeCreate  EventType = "RecipeCreate"  // 好友创建了菜谱
	EventRecipeDelete  EventType = "RecipeDelete"  // 好友删除了菜谱
)

// Event 通知事件
type Event struct {
	Id       int64     `json:"id"`                 // 事件 ID（雪花算法生成）
	Type     EventType `json:"type"`               // 事件类型
	ActorId  uint      `json:"actorId"`            // 触发事件的用户 ID
	RecipeId *uint     `json:"recipeId,omitempty"` // 相关菜谱 ID（菜谱事件）
}

// Envelope 事件投递信封，带接收方
// kafka 模式下作为消息体在生产者和消费者之间传递
type Envelope struct {
	UserId uint  `json:"userId"` // 接收方用户 ID
	Event  Event `json:"event"`
}

// Notifier 事件投递接口
// Service 层通过依赖注入使用，实现决定投递路径（进程内或消息队列）
type Notifier interface {
	// Notify 向单个用户投递事件，尽力而为，不返回错误
	Notify(userID uint, event Event)
}

// NopNotifier 空实现，测试和禁用通知时使用
type NopNotifier struct{}

// Notify 丢弃所有事件
func (NopNotifier) Notify(userID uint, event Event) {}
