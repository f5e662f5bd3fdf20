package models

import "time"

// Типы голосов. Любое значение, отличное от VoteUp, засчитывается
// как голос против — так ведёт себя исходный API.
const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Post представляет пост форума. Счётчики голосов хранятся в базе,
// разница голосов всегда вычисляется при чтении и никогда не сохраняется.
type Post struct {
	ID             int       // Уникальный идентификатор поста
	AuthorEmail    string    // Почта автора (связь с User по значению)
	Title          string    // Заголовок поста
	Description    string    // Текст поста
	Tags           []string  // Произвольный набор тегов
	Upvote         int       // Количество голосов за
	Downvote       int       // Количество голосов против
	VoteDifference int       // Upvote - Downvote, заполняется при чтении
	CreatedAt      time.Time // Дата создания
}

// DummyPost используется для приёма данных из JSON-запроса на создание поста.
// Почта автора не принимается из тела: её определяет JWT.
type DummyPost struct {
	AuthorEmail string   `json:"-"`                                 // Почта автора, заполняется из контекста
	Title       string   `json:"title" validate:"required,max=200"` // Заголовок
	Description string   `json:"description" validate:"required"`   // Текст
	Tags        []string `json:"tags"`                              // Теги
}

// PostFilter описывает фильтры листинга постов.
type PostFilter struct {
	AuthorEmail      string   // Только посты этого автора
	Search           string   // Поиск по заголовку и тексту без учёта регистра
	Tags             []string // Пост должен содержать все перечисленные теги
	SortByPopularity bool     // true: сортировка по разнице голосов, иначе по дате
}
