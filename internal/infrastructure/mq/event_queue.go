// Package mq 提供通知事件的投递实现
// messageMode 为 "channel" 时事件在进程内直接投递给 Hub，
// 为 "kafka" 时事件经由 Kafka 主题流转，由消费者投递给 Hub，
// 多实例部署时保证事件能到达持有连接的实例
package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/seblyng/foodie/internal/config"
	"github.com/seblyng/foodie/internal/gateway/websocket"
	"github.com/seblyng/foodie/internal/notify"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ctx = context.Background()

// EventQueue Kafka 事件队列
type EventQueue struct {
	writer *kafka.Writer
	reader *kafka.Reader
}

// NewEventQueue 初始化 Kafka 事件队列
func NewEventQueue(cfg *config.KafkaConfig) *EventQueue {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.HostPort),
		Topic:                  cfg.EventTopic,
		Balancer:               &kafka.Hash{},
		WriteTimeout:           cfg.Timeout * time.Second,
		RequiredAcks:           kafka.RequireNone,
		AllowAutoTopicCreation: true,
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{cfg.HostPort},
		Topic:          cfg.EventTopic,
		CommitInterval: cfg.Timeout * time.Second,
		GroupID:        "foodie_events",
		StartOffset:    kafka.LastOffset,
	})
	return &EventQueue{writer: writer, reader: reader}
}

// Close 关闭读写连接
func (q *EventQueue) Close() {
	if err := q.writer.Close(); err != nil {
		zap.L().Error("关闭 kafka writer 失败", zap.Error(err))
	}
	if err := q.reader.Close(); err != nil {
		zap.L().Error("关闭 kafka reader 失败", zap.Error(err))
	}
}

// Produce 发送事件信封到事件主题
// 以接收方用户 ID 作为分区键，同一用户的事件保持有序
func (q *EventQueue) Produce(envelope *notify.Envelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	return q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(envelope.UserId), 10)),
		Value: payload,
	})
}

// StartConsumer 启动消费者协程
// 持续读取事件主题，把事件投递给本实例 Hub 上的在线用户；
// ctx 取消后退出
func (q *EventQueue) StartConsumer(ctx context.Context, hub *websocket.Hub) {
	go func() {
		for {
			message, err := q.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				zap.L().Error("读取事件消息失败", zap.Error(err))
				continue
			}

			var envelope notify.Envelope
			if err := json.Unmarshal(message.Value, &envelope); err != nil {
				zap.L().Error("解析事件信封失败", zap.Error(err))
				continue
			}

			payload, err := json.Marshal(envelope.Event)
			if err != nil {
				continue
			}
			hub.Deliver(envelope.UserId, payload)
		}
	}()
}
