// Package models содержит доменные структуры форума: пользователей, посты,
// комментарии, платежи и объявления, а также вспомогательные типы
// для приёма данных из JSON-запросов.
package models

import "time"

// Роли пользователей.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Статусы членства.
const (
	MembershipFree       = "free"
	MembershipSubscribed = "subscribed"
)

// DefaultMaxPosts лимит постов для пользователя без членства.
// Применяется и тогда, когда запись пользователя не найдена.
const DefaultMaxPosts = 5

// SubscribedMaxPosts лимит постов после оформления членства.
const SubscribedMaxPosts = 10

// User представляет зарегистрированного пользователя форума.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Email        string    // Электронная почта (уникальная)
	Username     string    // Имя пользователя
	PasswordHash string    // Хэш пароля пользователя
	Role         string    // Роль пользователя: member или admin
	Membership   string    // Статус членства: free или subscribed
	MaxPosts     int       // Лимит постов для автора без членства
	Badge        *string   // Значок (gold после оформления членства)
	CreatedAt    time.Time // Дата регистрации
}
