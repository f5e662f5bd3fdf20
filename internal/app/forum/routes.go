// Package forum предоставляет маршруты основного приложения.
package forum

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	announcementcreate "github.com/magabrotheeeer/forum-backend/internal/http/handlers/announcement/create"
	announcementlist "github.com/magabrotheeeer/forum-backend/internal/http/handlers/announcement/list"
	answercreate "github.com/magabrotheeeer/forum-backend/internal/http/handlers/answer/create"
	answerlist "github.com/magabrotheeeer/forum-backend/internal/http/handlers/answer/list"
	"github.com/magabrotheeeer/forum-backend/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/forum-backend/internal/http/handlers/auth/register"
	commentcreate "github.com/magabrotheeeer/forum-backend/internal/http/handlers/comment/create"
	commentlist "github.com/magabrotheeeer/forum-backend/internal/http/handlers/comment/list"
	commentlistall "github.com/magabrotheeeer/forum-backend/internal/http/handlers/comment/listall"
	commentreport "github.com/magabrotheeeer/forum-backend/internal/http/handlers/comment/report"
	"github.com/magabrotheeeer/forum-backend/internal/http/handlers/health"
	membershipupgrade "github.com/magabrotheeeer/forum-backend/internal/http/handlers/membership/upgrade"
	paymentintent "github.com/magabrotheeeer/forum-backend/internal/http/handlers/payment/intent"
	paymentsave "github.com/magabrotheeeer/forum-backend/internal/http/handlers/payment/save"
	paymentstatus "github.com/magabrotheeeer/forum-backend/internal/http/handlers/payment/status"
	postcount "github.com/magabrotheeeer/forum-backend/internal/http/handlers/post/count"
	postcreate "github.com/magabrotheeeer/forum-backend/internal/http/handlers/post/create"
	postlist "github.com/magabrotheeeer/forum-backend/internal/http/handlers/post/list"
	postread "github.com/magabrotheeeer/forum-backend/internal/http/handlers/post/read"
	postremove "github.com/magabrotheeeer/forum-backend/internal/http/handlers/post/remove"
	postvote "github.com/magabrotheeeer/forum-backend/internal/http/handlers/post/vote"
	questioncreate "github.com/magabrotheeeer/forum-backend/internal/http/handlers/question/create"
	questionlist "github.com/magabrotheeeer/forum-backend/internal/http/handlers/question/list"
	textaigenerate "github.com/magabrotheeeer/forum-backend/internal/http/handlers/textai/generate"
	textaihistory "github.com/magabrotheeeer/forum-backend/internal/http/handlers/textai/history"
	textaisavehistory "github.com/magabrotheeeer/forum-backend/internal/http/handlers/textai/savehistory"
	userisadmin "github.com/magabrotheeeer/forum-backend/internal/http/handlers/user/isadmin"
	userlist "github.com/magabrotheeeer/forum-backend/internal/http/handlers/user/list"
	userpromote "github.com/magabrotheeeer/forum-backend/internal/http/handlers/user/promote"
	"github.com/magabrotheeeer/forum-backend/internal/http/middlewarectx"
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

// Services группирует бизнес-логику приложения для регистрации маршрутов.
type Services struct {
	Auth         *authservice.Service
	Post         *postservice.Service
	Comment      *commentservice.Service
	Question     *questionservice.Service
	Membership   *membershipservice.Service
	User         *userservice.Service
	Announcement *announcementservice.Service
	TextAI       *textaiservice.Service
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage, s Services, providerClient *paymentprovider.Client) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/posts", postlist.New(logger, s.Post).ServeHTTP)
		r.Get("/posts/{id}", postread.New(logger, s.Post).ServeHTTP)
		r.Get("/posts/{id}/comments", commentlist.New(logger, s.Comment).ServeHTTP)
		r.Get("/announcements", announcementlist.New(logger, s.Announcement).ServeHTTP)
		r.Get("/questions", questionlist.New(logger, s.Question).ServeHTTP)
		r.Get("/questions/{id}/answers", answerlist.New(logger, s.Question).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/posts", postcreate.New(logger, s.Post).ServeHTTP)
			r.Get("/posts/count", postcount.New(logger, s.Post).ServeHTTP)
			r.Post("/posts/{id}/vote", postvote.New(logger, s.Post).ServeHTTP)
			r.Post("/posts/{id}/comments", commentcreate.New(logger, s.Comment).ServeHTTP)
			r.Post("/comments/{id}/report", commentreport.New(logger, s.Comment).ServeHTTP)
			r.Post("/questions", questioncreate.New(logger, s.Question).ServeHTTP)
			r.Post("/questions/{id}/answers", answercreate.New(logger, s.Question).ServeHTTP)
			r.Post("/payments/intent", paymentintent.New(logger, providerClient).ServeHTTP)
			r.Post("/payments", paymentsave.New(logger, s.Membership).ServeHTTP)
			r.Get("/payments/status", paymentstatus.New(logger, s.Membership).ServeHTTP)
			r.Post("/membership/upgrade", membershipupgrade.New(logger, s.Membership).ServeHTTP)
			r.Get("/users/admin", userisadmin.New(logger, s.User).ServeHTTP)
			r.Post("/textai/generate", textaigenerate.New(logger, s.TextAI).ServeHTTP)
			r.Post("/textai/history", textaisavehistory.New(logger, s.TextAI).ServeHTTP)
			r.Get("/textai/history", textaihistory.New(logger, s.TextAI).ServeHTTP)

			// Административные конечные точки
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Delete("/posts/{id}", postremove.New(logger, s.Post).ServeHTTP)
				r.Get("/comments", commentlistall.New(logger, s.Comment).ServeHTTP)
				r.Get("/users", userlist.New(logger, s.User).ServeHTTP)
				r.Post("/users/{uid}/promote", userpromote.New(logger, s.User).ServeHTTP)
				r.Post("/announcements", announcementcreate.New(logger, s.Announcement).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
