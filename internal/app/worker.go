package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sfm/internal/attendance"
	"go-sfm/internal/messaging/kafka"
	"go-sfm/internal/messaging/kafka/producer"
	"go-sfm/internal/shared/connection"
	"go-sfm/internal/user"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reconcileSchedule fires just before midnight so the swept day is the one
// that just closed by the time the job reads "yesterday".
const reconcileSchedule = "59 23 * * *"

func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	attendanceRepo := attendance.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	reconciler := attendance.NewReconciler(attendanceRepo, userRepo, logger)

	scheduler := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DiscardLogger),
	))
	_, err = scheduler.AddFunc(reconcileSchedule, func() {
		if err := reconciler.Run(ctx, time.Now().UTC()); err != nil {
			logger.Error("attendance reconciliation failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
