package models

import "time"

// Question представляет вопрос пользователя к сообществу. Ответы хранятся
// отдельно и привязаны к вопросу по его идентификатору.
type Question struct {
	ID          int       // Уникальный идентификатор вопроса
	AuthorEmail string    // Почта автора
	Title       string    // Заголовок вопроса
	Description string    // Текст вопроса
	AnswerCount int       // Количество ответов, вычисляется при выборке
	CreatedAt   time.Time // Дата создания
}

// Answer представляет ответ на вопрос.
type Answer struct {
	ID          int       // Уникальный идентификатор ответа
	QuestionID  int       // Идентификатор вопроса
	AuthorEmail string    // Почта автора
	Text        string    // Текст ответа
	CreatedAt   time.Time // Дата создания
}

// DummyQuestion используется для приёма данных из JSON-запроса на создание вопроса.
type DummyQuestion struct {
	AuthorEmail string `json:"-"`                                 // Почта автора, заполняется из контекста
	Title       string `json:"title" validate:"required,max=200"` // Заголовок
	Description string `json:"description" validate:"required"`   // Текст
}

// DummyAnswer используется для приёма данных из JSON-запроса на создание ответа.
type DummyAnswer struct {
	AuthorEmail string `json:"-"`                        // Почта автора, заполняется из контекста
	Text        string `json:"text" validate:"required"` // Текст ответа
}
