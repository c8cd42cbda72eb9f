package view

import "time"

// MessageTTL время жизни баннера сообщения
// Баннер гаснет сам по истечении фиксированной задержки
const MessageTTL = 5 * time.Second

// MessageKind тип баннера
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// Message баннер сообщения с автоистечением
type Message struct {
	Text      string
	Kind      MessageKind
	ExpiresAt time.Time
}

// NewMessage создает баннер с фиксированным сроком жизни от now
func NewMessage(text string, kind MessageKind, now time.Time) *Message {
	return &Message{
		Text:      text,
		Kind:      kind,
		ExpiresAt: now.Add(MessageTTL),
	}
}

// Expired возвращает true, если баннер пора скрыть
func (m *Message) Expired(now time.Time) bool {
	return now.After(m.ExpiresAt)
}

// Clock интерфейс часов контроллеров представления
type Clock interface {
	Now() time.Time
}

// SystemClock реализация Clock на системных часах
type SystemClock struct{}

// Now возвращает текущее время
func (SystemClock) Now() time.Time {
	return time.Now()
}
