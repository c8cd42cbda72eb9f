package models

import (
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	ServiceID    string
	UserEmail    string
	ScheduleTime time.Time // абсолютный момент начала записи
}

// ExistenceResult результат двухфазной проверки существования бронирования
// Exists == true при сетевых сбоях обеих фаз - консервативная трактовка:
// запись не считается исчезнувшей, пока хранилище явно этого не подтвердило
type ExistenceResult struct {
	Exists bool
	Record *domain.Booking
}

// TabbedBookings бронирования, разложенные по вкладкам
type TabbedBookings struct {
	Upcoming []domain.Booking
	Past     []domain.Booking
}

// Partition раскладывает бронирования по вкладкам upcoming/past
// Отмененные попадают в past независимо от даты; остальные сравниваются
// с текущим моментом в зоне наблюдателя
func Partition(list []domain.Booking, now time.Time) TabbedBookings {
	tabs := TabbedBookings{
		Upcoming: make([]domain.Booking, 0, len(list)),
		Past:     make([]domain.Booking, 0, len(list)),
	}
	for _, b := range list {
		if b.IsUpcoming(now) {
			tabs.Upcoming = append(tabs.Upcoming, b)
		} else {
			tabs.Past = append(tabs.Past, b)
		}
	}
	return tabs
}
