package bookingview

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	bookingmodels "github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
)

// BookingLifecycle интерфейс сервиса бронирований для контроллера
type BookingLifecycle interface {
	FetchForUser(ctx context.Context, userEmail string) ([]domain.Booking, error)
	ExistenceCheck(ctx context.Context, id domain.BookingID) (*bookingmodels.ExistenceResult, error)
	Cancel(ctx context.Context, id domain.BookingID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
