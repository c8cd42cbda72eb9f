package get_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
)

type BookingService interface {
	ExistenceCheck(ctx context.Context, id domain.BookingID) (*models.ExistenceResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
