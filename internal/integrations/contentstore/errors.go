package contentstore

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound возвращается, когда хранилище ответило чистым 404
	ErrNotFound = errors.New("contentstore: record not found")

	// ErrNetwork возвращается, когда запрос не удалось выполнить
	// (DNS, соединение, таймаут) - в отличие от ответа с кодом ошибки
	ErrNetwork = errors.New("contentstore: network error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("contentstore: internal error")
)

// RemoteRequestError ошибка, когда хранилище вернуло неуспешный HTTP статус
// Несет статус-код для эвристической классификации на вызывающей стороне
type RemoteRequestError struct {
	Status int
	Body   string
}

// Error возвращает текст ошибки
func (e *RemoteRequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("contentstore: remote request failed with status %d", e.Status)
	}
	return fmt.Sprintf("contentstore: remote request failed with status %d: %s", e.Status, e.Body)
}

// IsStatus проверяет, что ошибка является RemoteRequestError с указанным статусом
func IsStatus(err error, status int) bool {
	var reqErr *RemoteRequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status == status
	}
	return false
}
