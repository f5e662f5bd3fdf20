package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/forum-backend/internal/models"
)

// AnnouncementPublisher отправляет события объявлений в exchange рассылки.
type AnnouncementPublisher struct {
	ch *amqp.Channel
}

// NewAnnouncementPublisher создает паблишер поверх открытого канала.
func NewAnnouncementPublisher(ch *amqp.Channel) *AnnouncementPublisher {
	return &AnnouncementPublisher{ch: ch}
}

// PublishAnnouncement публикует объявление с ключом очереди рассылки.
func (p *AnnouncementPublisher) PublishAnnouncement(announcement models.Announcement) error {
	return PublishMessage(p.ch, Exchange, BroadcastQueue.RoutingKey, announcement)
}
