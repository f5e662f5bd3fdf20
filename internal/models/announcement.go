package models

import "time"

// Announcement объявление администрации форума.
type Announcement struct {
	ID          int       // Уникальный идентификатор объявления
	AuthorName  string    // Имя автора объявления
	Title       string    // Заголовок
	Description string    // Текст объявления
	CreatedAt   time.Time // Дата публикации
}

// DummyAnnouncement используется для приёма данных из JSON-запроса на создание объявления.
type DummyAnnouncement struct {
	AuthorName  string `json:"author_name" validate:"required"`   // Имя автора
	Title       string `json:"title" validate:"required,max=200"` // Заголовок
	Description string `json:"description" validate:"required"`  // Текст
}
