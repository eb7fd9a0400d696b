package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized: бэкенд ответил 401. Сессию к этому моменту уже
	// сбросил перехватчик, вызывающему остаётся только выйти.
	ErrUnauthorized = errors.New("backend: unauthorized")

	ErrNotFound = errors.New("backend: not found")
)

// APIError: любой не-2xx ответ кроме 401
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// HasStatus: бэкенд ответил именно этим статусом
func HasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// UserMessage: текст для баннера. Сообщение сервера, если оно есть.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fmt.Sprintf("Server responded with %d %s", apiErr.Status, http.StatusText(apiErr.Status))
	}
	return "Could not reach the design server, please try again"
}

// StatusFor: какой статус отдать браузеру при ошибке бэкенда
func StatusFor(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}
