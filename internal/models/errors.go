package models

import (
	"errors"
	"fmt"
)

// Ошибки доменного уровня. Сервисы возвращают их обработчикам,
// которые превращают их в HTTP-ответы.
var (
	// ErrUserNotFound пользователь с такой почтой или UID не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound пост с таким ID не найден.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound комментарий с таким ID не найден.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrQuestionNotFound вопрос с таким ID не найден.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrPaymentNotFound квитанция о платеже не найдена.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrAlreadyAdmin пользователь уже имеет роль admin.
	ErrAlreadyAdmin = errors.New("user is already an admin")
)

// QuotaExceededError автор без членства исчерпал лимит постов.
// Несёт значение лимита для сообщения пользователю.
type QuotaExceededError struct {
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("post limit of %d reached", e.Limit)
}
