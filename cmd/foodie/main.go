package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/seblyng/foodie/internal/config"
	dao "github.com/seblyng/foodie/internal/dao/mysql"
	myredis "github.com/seblyng/foodie/internal/dao/redis"
	"github.com/seblyng/foodie/internal/gateway/websocket"
	"github.com/seblyng/foodie/internal/handler"
	"github.com/seblyng/foodie/internal/https_server"
	"github.com/seblyng/foodie/internal/infrastructure/logger"
	"github.com/seblyng/foodie/internal/infrastructure/mq"
	"github.com/seblyng/foodie/internal/infrastructure/storage"
	"github.com/seblyng/foodie/internal/notify"
	"github.com/seblyng/foodie/internal/service"
	"github.com/seblyng/foodie/pkg/util/jwt"
	"github.com/seblyng/foodie/pkg/util/snowflake"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. 初始化雪花算法（事件 ID）
	snowflake.Init(conf.SnowflakeConfig.MachineID)

	// 4. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 5. 初始化数据库
	dao.Init()
	zap.L().Info("数据库初始化成功")

	// 6. 初始化 Redis
	if err := myredis.Init(); err != nil {
		zap.L().Fatal("Redis 初始化失败", zap.Error(err))
	}
	zap.L().Info("Redis 初始化成功")

	// 7. 初始化对象存储
	minioStorage, err := storage.NewMinioStorage(&conf.MinioConfig)
	if err != nil {
		zap.L().Fatal("对象存储初始化失败", zap.Error(err))
	}
	zap.L().Info("对象存储初始化成功")

	// 8. 初始化 WebSocket Hub 和事件投递
	hub := websocket.NewHub()
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	var notifier notify.Notifier
	var eventQueue *mq.EventQueue
	if conf.KafkaConfig.MessageMode == "kafka" {
		// 事件经由 Kafka 流转，多实例部署时到达持有连接的实例
		eventQueue = mq.NewEventQueue(&conf.KafkaConfig)
		eventQueue.StartConsumer(consumerCtx, hub)
		notifier = mq.NewKafkaDispatcher(eventQueue)
	} else {
		// 进程内直接投递
		notifier = mq.NewChannelDispatcher(hub)
	}
	zap.L().Info("事件投递初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 9. 初始化 Service 层和 Handler 层（依赖注入）
	service.InitServices(dao.Repos, notifier, minioStorage)
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}
	handlers := handler.NewHandlers(service.Svc, hub)

	// 10. 初始化 HTTP 服务器并启动
	engine := https_server.Init(handlers)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		zap.L().Info("服务器启动", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("服务器运行失败", zap.Error(err))
		}
	}()

	// 等待退出信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("关闭服务器...")

	stopConsumer()
	if eventQueue != nil {
		eventQueue.Close()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("服务器关闭异常", zap.Error(err))
	}
	zap.L().Info("服务器已关闭")
}
