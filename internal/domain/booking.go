package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingID канонический идентификатор бронирования в content store
// Хранилище использует две схемы идентификаторов (documentId и legacy числовой id);
// BookingID создается только нормализатором и дальше используется во всех вызовах API
type BookingID string

// String возвращает строковое представление идентификатора
func (id BookingID) String() string {
	return string(id)
}

// IsZero возвращает true, если идентификатор пустой
func (id BookingID) IsZero() bool {
	return id == ""
}

// Booking represents a booking fetched from the content store
type Booking struct {
	ID           BookingID
	LegacyID     int64 // числовой id хранилища, только для диагностики
	UserEmail    string
	ScheduleTime time.Time
	Status       BookingStatus
	Service      Service
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsUpcoming returns true if the booking is scheduled after now and not cancelled
// Отмененные бронирования всегда считаются прошедшими, независимо от даты
func (b *Booking) IsUpcoming(now time.Time) bool {
	if b.IsCancelled() {
		return false
	}
	return b.ScheduleTime.After(now)
}

// BadgeStatus возвращает статус для отображения
// Неизвестные и пустые значения трактуются как confirmed (канонический дефолт)
func BadgeStatus(raw string) BookingStatus {
	switch BookingStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusCancelled:
		return StatusCancelled
	default:
		return StatusConfirmed
	}
}

// RescheduleDraft черновик переноса бронирования
// Перенос реализован как отмена + создание нового бронирования через
// предзаполненный флоу создания, а не как изменение существующей записи
type RescheduleDraft struct {
	ServiceID    string
	ServiceTitle string
	UserEmail    string
}

// NewRescheduleDraft создает черновик переноса из существующего бронирования
// Переносится только услуга; дату и слот пользователь выбирает заново
func NewRescheduleDraft(b *Booking) RescheduleDraft {
	return RescheduleDraft{
		ServiceID:    b.Service.ID,
		ServiceTitle: b.Service.Title,
		UserEmail:    b.UserEmail,
	}
}
