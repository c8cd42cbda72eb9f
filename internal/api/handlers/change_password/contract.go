package change_password

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	"github.com/m04kA/SMC-BookingPortal/internal/service/account"
)

type AccountService interface {
	ChangePassword(ctx context.Context, session *authprovider.Session, req *account.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
