package update_profile

import (
	"context"

	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	"github.com/m04kA/SMC-BookingPortal/internal/service/account"
)

type AccountService interface {
	UpdateProfile(ctx context.Context, session *authprovider.Session, req *account.UpdateProfileRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
