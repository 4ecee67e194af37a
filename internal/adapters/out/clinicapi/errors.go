package clinicapi

import (
	"errors"
	"fmt"
)

// APIError - ошибка, о которой рассказал сам бэкенд
// Message показывается пользователю как есть, если он не пустой
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("clinic api: unexpected status code %d", e.StatusCode)
}

// ErrorMessage достает из ошибки сообщение бэкенда,
// при его отсутствии возвращает запасной текст
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized сообщает, что бэкенд отверг токен доктора
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
