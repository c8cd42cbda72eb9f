package account

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
)

// AuthProvider интерфейс внешнего auth-провайдера
// Провайдер владеет identity-полями; сервис только делегирует мутации
type AuthProvider interface {
	GetSession(ctx context.Context, uid string) (*authprovider.Session, error)
	UpdateProfile(ctx context.Context, uid string, params authprovider.UpdateProfileParams) error
	UpdatePassword(ctx context.Context, uid string, newPassword string) error
	Reauthenticate(ctx context.Context, email, password string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
