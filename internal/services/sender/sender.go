// Package sender содержит почтовую рассылку объявлений подписчикам.
package sender

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	libsmtp "github.com/magabrotheeeer/forum-backend/internal/lib/smtp"
	"github.com/magabrotheeeer/forum-backend/internal/lib/sl"
	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// SubscriberRepository возвращает адреса пользователей с платным членством.
type SubscriberRepository interface {
	ListSubscriberEmails(ctx context.Context) ([]string, error)
}

// Service рассылает письма о новых объявлениях.
type Service struct {
	transport   libsmtp.TransportInterface
	subscribers SubscriberRepository
	log         *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport libsmtp.TransportInterface, subscribers SubscriberRepository, log *slog.Logger) *Service {
	return &Service{
		transport:   transport,
		subscribers: subscribers,
		log:         log,
	}
}

// SendAnnouncement обрабатывает событие из очереди рассылки: письмо
// уходит каждому подписчику. Ошибка отправки одному адресату не
// останавливает рассылку остальным.
func (s *Service) SendAnnouncement(body []byte) error {
	var announcement models.Announcement
	if err := json.Unmarshal(body, &announcement); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	emails, err := s.subscribers.ListSubscriberEmails(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list subscribers: %w", err)
	}
	if len(emails) == 0 {
		s.log.Info("no subscribers to notify", slog.Int("announcement_id", announcement.ID))
		return nil
	}

	subject := "Новое объявление: " + announcement.Title
	bodyText := fmt.Sprintf("Здравствуйте!\n\nНа форуме опубликовано новое объявление.\n\n%s\n\n%s\n\n— %s",
		announcement.Title, announcement.Description, announcement.AuthorName)

	var failed int
	for _, email := range emails {
		if err := s.sendEmail([]string{email}, subject, bodyText); err != nil {
			failed++
			s.log.Error("failed to send announcement email",
				slog.String("email", email), sl.Err(err))
		}
	}

	s.log.Info("announcement broadcast finished",
		slog.Int("announcement_id", announcement.ID),
		slog.Int("total", len(emails)),
		slog.Int("failed", failed))

	if failed == len(emails) {
		return fmt.Errorf("failed to deliver announcement to all %d subscribers", failed)
	}
	return nil
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		if err := client.Quit(); err != nil {
			_ = client.Close()
		}
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
