package bookings

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/integrations/contentstore"
)

// ContentStoreClient интерфейс клиента content store
type ContentStoreClient interface {
	ListBookings(ctx context.Context, email string) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	FilterBookingsByDocumentID(ctx context.Context, id string) ([]domain.Booking, error)
	CreateBooking(ctx context.Context, data *contentstore.CreateBookingData) (*domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) error
	DeleteBooking(ctx context.Context, id string) error
	ListServices(ctx context.Context) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
