package get_user_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

type BookingService interface {
	FetchForUser(ctx context.Context, userEmail string) ([]domain.Booking, error)
}

// TimeProvider источник текущего времени для разбиения по вкладкам
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
