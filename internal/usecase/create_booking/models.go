package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// Request запрос на создание бронирования
// Дата и слот приходят в том виде, в каком их выбирает пользователь
// в календаре и каталоге слотов
type Request struct {
	UserEmail string
	ServiceID string
	Date      string // YYYY-MM-DD, ячейка календаря
	SlotLabel string // "2:00 PM", метка из каталога слотов
}

// Response созданное бронирование
type Response struct {
	ID           string  `json:"id"`
	UserEmail    string  `json:"userEmail"`
	ScheduleTime string  `json:"scheduleTime"` // RFC3339
	Status       string  `json:"status"`
	ServiceID    string  `json:"serviceId"`
	ServiceTitle string  `json:"serviceTitle"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
}

// fromDomainBooking конвертирует domain модель в response
func fromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID.String(),
		UserEmail:    b.UserEmail,
		ScheduleTime: b.ScheduleTime.Format(time.RFC3339),
		Status:       string(b.Status),
		ServiceID:    b.Service.ID,
		ServiceTitle: b.Service.Title,
		Duration:     b.Service.DurationMinutes,
		Price:        b.Service.Price,
		ImageURL:     b.Service.ImageURL,
	}
}
