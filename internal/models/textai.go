package models

import "time"

// PromptRecord запись истории обращений к текстовому AI.
type PromptRecord struct {
	ID          int       // Уникальный идентификатор записи
	AuthorEmail string    // Почта автора запроса
	Prompt      string    // Текст запроса
	Answer      string    // Ответ модели
	CreatedAt   time.Time // Дата обращения
}

// DummyPromptRecord используется для приёма данных из JSON-запроса на сохранение истории.
type DummyPromptRecord struct {
	AuthorEmail string `json:"-"`                           // Почта автора, заполняется из контекста
	Prompt      string `json:"prompt" validate:"required"` // Текст запроса
	Answer      string `json:"answer" validate:"required"` // Ответ модели
}
