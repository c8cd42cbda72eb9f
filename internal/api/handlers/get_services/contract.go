package get_services

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/domain"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
