package get_user_bookings

import (
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID           string  `json:"id"`
	ScheduleTime string  `json:"scheduleTime"` // RFC3339
	Status       string  `json:"status"`
	ServiceTitle string  `json:"serviceTitle"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
}

// ListResponse бронирования пользователя, разбитые по вкладкам
type ListResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

func toResponses(list []domain.Booking) []BookingResponse {
	result := make([]BookingResponse, len(list))
	for i, b := range list {
		result[i] = BookingResponse{
			ID:           b.ID.String(),
			ScheduleTime: b.ScheduleTime.Format(time.RFC3339),
			Status:       string(b.Status),
			ServiceTitle: b.Service.Title,
			Duration:     b.Service.DurationMinutes,
			Price:        b.Service.Price,
			ImageURL:     b.Service.ImageURL,
		}
	}
	return result
}
