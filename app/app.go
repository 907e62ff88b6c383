package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/campuslib/circulation/config"
	"github.com/campuslib/circulation/internal/handler"
	"github.com/campuslib/circulation/internal/mailer"
	"github.com/campuslib/circulation/internal/repository"
	"github.com/campuslib/circulation/internal/server"
	"github.com/campuslib/circulation/internal/service"
	"github.com/campuslib/circulation/migrations"
	"github.com/campuslib/circulation/pkg/kafka"
	"github.com/campuslib/circulation/pkg/logger"
	"github.com/campuslib/circulation/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	svc := service.NewService(repo, service.NewEnqueuer(producer), log)

	consumeCtx, consumeCancel := context.WithCancel(context.Background())
	defer consumeCancel()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ReminderConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	ml := mailer.New(cfg.SMTP, log)
	go kafka.Consume(consumeCtx, consumer, handler.NewConsumer(ml.SendReminder, log), kafka.ReminderTopic, log)

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	consumeCancel()
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
