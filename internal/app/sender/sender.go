// Package sender собирает и запускает сервис почтовой рассылки объявлений.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/forum-backend/internal/config"
	"github.com/magabrotheeeer/forum-backend/internal/lib/rabbitmq"
	libsmtp "github.com/magabrotheeeer/forum-backend/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/forum-backend/internal/services/sender"
	"github.com/magabrotheeeer/forum-backend/internal/storage/repository"
)

type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.Service
	logger        *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitConnectionString, cfg.ConnectRetries, cfg.ConnectDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, []rabbitmq.QueueConfig{rabbitmq.BroadcastQueue})
	if err != nil {
		conn.Close()
		return nil, err
	}

	transport := libsmtp.NewTransport(cfg, logger)
	senderService := senderservice.New(transport, db, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.BroadcastQueue.QueueName, a.senderService.SendAnnouncement)
	if err != nil {
		a.logger.Error("failed to start broadcast consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
