package change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPortal/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPortal/internal/service/account"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует сессия пользователя"
	msgPasswordMismatch   = "пароли не совпадают"
	msgPasswordTooShort   = "пароль слишком короткий"
	msgPasswordUnchanged  = "новый пароль совпадает со старым"
	msgWrongPassword      = "неверный текущий пароль"
	msgGoogleAccount      = "аккаунт Google управляется провайдером"
	msgInternal           = "не удалось сменить пароль"
)

// ChangePasswordRequest тело запроса на смену пароля
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type Handler struct {
	service AccountService
	logger  Logger
}

func NewHandler(service AccountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/account/password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /account/password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &account.ChangePasswordRequest{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}

	if err := h.service.ChangePassword(r.Context(), session, serviceReq); err != nil {
		switch {
		case errors.Is(err, account.ErrPasswordMismatch):
			handlers.RespondBadRequest(w, msgPasswordMismatch)

		case errors.Is(err, account.ErrPasswordTooShort):
			handlers.RespondBadRequest(w, msgPasswordTooShort)

		case errors.Is(err, account.ErrPasswordUnchanged):
			handlers.RespondBadRequest(w, msgPasswordUnchanged)

		case errors.Is(err, account.ErrWrongPassword):
			h.logger.Warn("PUT /account/password - Wrong current password: user=%s", session.UID)
			handlers.RespondForbidden(w, msgWrongPassword)

		case errors.Is(err, account.ErrGoogleAccount):
			h.logger.Warn("PUT /account/password - Google account restriction: user=%s", session.UID)
			handlers.RespondForbidden(w, msgGoogleAccount)

		default:
			h.logger.Error("PUT /account/password - Internal error: user=%s: %v", session.UID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("PUT /account/password - Password changed: user=%s", session.UID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
