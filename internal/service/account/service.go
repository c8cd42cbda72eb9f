package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingPortal/internal/integrations/authprovider"
	"github.com/m04kA/SMC-BookingPortal/pkg/ptr"
)

// MinPasswordLength минимальная длина нового пароля
const MinPasswordLength = 6

// UpdateProfileRequest запрос на обновление профиля
type UpdateProfileRequest struct {
	FirstName string
	LastName  string
	Email     string
}

// ChangePasswordRequest запрос на смену пароля
type ChangePasswordRequest struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Service сервис профиля пользователя
// Все identity-мутации делегируются внешнему auth-провайдеру;
// локально выполняется только валидация
type Service struct {
	provider AuthProvider
	logger   Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(provider AuthProvider, logger Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// UpdateProfile сохраняет профиль: имя и фамилия склеиваются в display name,
// email обновляется только если изменился
// Для Google-аккаунтов email принадлежит провайдеру и менять его нельзя
func (s *Service) UpdateProfile(ctx context.Context, session *authprovider.Session, req *UpdateProfileRequest) error {
	s.logger.Info("UpdateProfile: uid=%s", session.UID)

	displayName := strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName))

	params := authprovider.UpdateProfileParams{}
	if displayName != "" && displayName != session.DisplayName {
		params.DisplayName = ptr.Ptr(displayName)
	}

	newEmail := strings.TrimSpace(req.Email)
	if newEmail != "" && newEmail != session.Email {
		if session.IsGoogle() {
			s.logger.Warn("UpdateProfile: uid=%s attempted email change on google account", session.UID)
			return ErrGoogleAccount
		}
		if !strings.Contains(newEmail, "@") {
			return fmt.Errorf("%w: %q", ErrInvalidEmail, newEmail)
		}
		params.Email = ptr.Ptr(newEmail)
	}

	if params.DisplayName == nil && params.Email == nil {
		s.logger.Info("UpdateProfile: uid=%s nothing to update", session.UID)
		return nil
	}

	if err := s.provider.UpdateProfile(ctx, session.UID, params); err != nil {
		switch {
		case errors.Is(err, authprovider.ErrEmailAlreadyInUse):
			s.logger.Warn("UpdateProfile: uid=%s email conflict", session.UID)
			return ErrEmailInUse
		default:
			s.logger.Error("UpdateProfile: provider error for uid=%s: %v", session.UID, err)
			return fmt.Errorf("%w: UpdateProfile - provider error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateProfile: successfully updated uid=%s", session.UID)
	return nil
}

// ChangePassword меняет пароль после re-аутентификации текущим паролем
// Совпадение нового пароля с подтверждением, минимальная длина и отличие
// от текущего проверяются локально до похода к провайдеру
func (s *Service) ChangePassword(ctx context.Context, session *authprovider.Session, req *ChangePasswordRequest) error {
	s.logger.Info("ChangePassword: uid=%s", session.UID)

	if session.IsGoogle() {
		s.logger.Warn("ChangePassword: uid=%s is a google account", session.UID)
		return ErrGoogleAccount
	}

	if err := validatePasswordChange(req); err != nil {
		s.logger.Warn("ChangePassword: validation failed for uid=%s: %v", session.UID, err)
		return err
	}

	// Провайдер принимает новый пароль только после подтверждения текущего
	if err := s.provider.Reauthenticate(ctx, session.Email, req.CurrentPassword); err != nil {
		if errors.Is(err, authprovider.ErrInvalidCredentials) {
			s.logger.Warn("ChangePassword: reauthentication failed for uid=%s", session.UID)
			return ErrWrongPassword
		}
		s.logger.Error("ChangePassword: reauthentication error for uid=%s: %v", session.UID, err)
		return fmt.Errorf("%w: ChangePassword - reauthentication error: %v", ErrInternal, err)
	}

	if err := s.provider.UpdatePassword(ctx, session.UID, req.NewPassword); err != nil {
		s.logger.Error("ChangePassword: provider error for uid=%s: %v", session.UID, err)
		return fmt.Errorf("%w: ChangePassword - provider error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: successfully changed password for uid=%s", session.UID)
	return nil
}

// validatePasswordChange локальная валидация до вызова провайдера
func validatePasswordChange(req *ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) < MinPasswordLength {
		return fmt.Errorf("%w: minimum %d characters", ErrPasswordTooShort, MinPasswordLength)
	}
	if req.NewPassword == req.CurrentPassword {
		return ErrPasswordUnchanged
	}
	return nil
}
