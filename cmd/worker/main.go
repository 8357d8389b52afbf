package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/OuicestnousCA/oca/cmd/config"
	"github.com/OuicestnousCA/oca/thirdparty/mailer"
	"github.com/OuicestnousCA/oca/thirdparty/rabbitmq"
	"github.com/OuicestnousCA/oca/utils/logger"
	"go.uber.org/zap"
)

// Email worker: drains the order-confirmation queue and sends mail
// through the provider API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting email worker", zap.String("env", cfg.Environment))

	sender := mailer.NewClient(cfg.Mail.BaseURL, cfg.Mail.APIKey, cfg.Mail.From)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, sender)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("Email worker shutting down")
}
