package create_booking

import (
	createBooking "github.com/m04kA/SMC-BookingPortal/internal/usecase/create_booking"
)

// CreateBookingRequest тело запроса на создание бронирования
type CreateBookingRequest struct {
	ServiceID string `json:"serviceId"`
	Date      string `json:"date"`      // YYYY-MM-DD
	SlotLabel string `json:"slotLabel"` // метка слота, например "2:00 PM"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Email берется из сессии, а не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(userEmail string) *createBooking.Request {
	return &createBooking.Request{
		UserEmail: userEmail,
		ServiceID: r.ServiceID,
		Date:      r.Date,
		SlotLabel: r.SlotLabel,
	}
}
