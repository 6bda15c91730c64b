package mq

import (
	"encoding/json"

	"github.com/seblyng/foodie/internal/gateway/websocket"
	"github.com/seblyng/foodie/internal/notify"

	"go.uber.org/zap"
)

// channelDispatcher 进程内投递，事件直接写入本实例 Hub
type channelDispatcher struct {
	hub *websocket.Hub
}

// Notify 实现 notify.Notifier
func (d *channelDispatcher) Notify(userID uint, event notify.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("序列化事件失败", zap.Error(err))
		return
	}
	d.hub.Deliver(userID, payload)
}

// kafkaDispatcher 经由 Kafka 投递，消费者负责最终推送
type kafkaDispatcher struct {
	queue *EventQueue
}

// Notify 实现 notify.Notifier
func (d *kafkaDispatcher) Notify(userID uint, event notify.Event) {
	envelope := &notify.Envelope{UserId: userID, Event: event}
	if err := d.queue.Produce(envelope); err != nil {
		// 尽力而为，投递失败只记录
		zap.L().Error("发送事件到 kafka 失败",
			zap.Uint("user_id", userID),
			zap.String("type", string(event.Type)),
			zap.Error(err))
	}
}

// NewChannelDispatcher 创建进程内事件投递器
func NewChannelDispatcher(hub *websocket.Hub) notify.Notifier {
	return &channelDispatcher{hub: hub}
}

// NewKafkaDispatcher 创建 Kafka 事件投递器
func NewKafkaDispatcher(queue *EventQueue) notify.Notifier {
	return &kafkaDispatcher{queue: queue}
}
