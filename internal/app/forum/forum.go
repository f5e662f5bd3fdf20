// Package forum собирает и запускает основное HTTP-приложение форума.
package forum

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/forum-backend/internal/aiprovider"
	"github.com/magabrotheeeer/forum-backend/internal/cache"
	"github.com/magabrotheeeer/forum-backend/internal/config"
	"github.com/magabrotheeeer/forum-backend/internal/lib/jwt"
	"github.com/magabrotheeeer/forum-backend/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/migrations"
	"github.com/magabrotheeeer/forum-backend/internal/paymentprovider"
	announcementservice "github.com/magabrotheeeer/forum-backend/internal/services/announcement"
	authservice "github.com/magabrotheeeer/forum-backend/internal/services/auth"
	commentservice "github.com/magabrotheeeer/forum-backend/internal/services/comment"
	membershipservice "github.com/magabrotheeeer/forum-backend/internal/services/membership"
	postservice "github.com/magabrotheeeer/forum-backend/internal/services/post"
	questionservice "github.com/magabrotheeeer/forum-backend/internal/services/question"
	textaiservice "github.com/magabrotheeeer/forum-backend/internal/services/textai"
	userservice "github.com/magabrotheeeer/forum-backend/internal/services/user"
	"github.com/magabrotheeeer/forum-backend/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
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

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.StripeSecretKey)
	aiClient := aiprovider.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	services := Services{
		Auth:         authservice.New(db, jwtMaker),
		Post:         postservice.New(db, db, cacheRedis, logger),
		Comment:      commentservice.New(db, logger),
		Question:     questionservice.New(db, logger),
		Membership:   membershipservice.New(db, db, logger),
		User:         userservice.New(db, logger),
		Announcement: announcementservice.New(db, rabbitmq.NewAnnouncementPublisher(ch), logger),
		TextAI:       textaiservice.New(aiClient, db, logger),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db, services, providerClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.ch.Close(); closeErr != nil {
			a.logger.Error("failed to close channel", sl.Err(closeErr))
		}
		if closeErr := a.conn.Close(); closeErr != nil {
			a.logger.Error("failed to close connection", sl.Err(closeErr))
		}
		a.db.DB.Close()
		return err
	}
}
