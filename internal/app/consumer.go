package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-sfm/internal/bootstrap"
	"go-sfm/internal/events"
	"go-sfm/internal/messaging/kafka/consumer"
	"go-sfm/internal/realtime"

	"github.com/gin-gonic/gin"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer runs the realtime push gateway: it drains the notification
// topic into the websocket hub and serves the /ws endpoint clients attach to.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.NotificationPushTopic,
		GroupID:        "go-sfm-notification-push",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	hub := realtime.NewHub(logger)
	wsHandler := realtime.NewWSHandler(hub, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeNotificationPush(ctx, reader, hub, logger)

	router := gin.Default()
	router.GET("/ws", wsHandler.ServeWS)

	port := os.Getenv("WS_PORT")
	if port == "" {
		port = "3001"
	}
	bootstrap.StartHTTPServer(
		router,
		bootstrap.ServerConfig{
			Port:        port,
			ReadTimeout: 5 * time.Second,
			// Write timeout stays zero: websocket connections are
			// long-lived and must not be cut by the HTTP server.
			IdleTimeout: 60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(),
	)

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
