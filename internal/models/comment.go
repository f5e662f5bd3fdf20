package models

import "time"

// Comment представляет комментарий к посту. Жизненный цикл комментариев
// не зависит от квоты постов.
type Comment struct {
	ID          int       // Уникальный идентификатор комментария
	PostID      int       // Идентификатор поста
	AuthorEmail string    // Почта автора
	Text        string    // Текст комментария
	CreatedAt   time.Time // Дата создания
}

// ReportedComment копия комментария, на который поступила жалоба.
type ReportedComment struct {
	ID          int       // Уникальный идентификатор жалобы
	CommentID   int       // Идентификатор исходного комментария
	AuthorEmail string    // Почта автора комментария
	Text        string    // Текст комментария на момент жалобы
	Feedback    string    // Причина жалобы
	ReportedAt  time.Time // Дата жалобы
}

// DummyComment используется для приёма данных из JSON-запроса на создание комментария.
type DummyComment struct {
	AuthorEmail string `json:"-"`                         // Почта автора, заполняется из контекста
	Text        string `json:"text" validate:"required"` // Текст комментария
}
