package update_profile

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
	msgInvalidEmail       = "некорректный адрес почты"
	msgEmailInUse         = "эта почта уже используется"
	msgGoogleAccount      = "аккаунт Google управляется провайдером"
	msgInternal           = "не удалось сохранить профиль"
)

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

// Handle PUT /api/v1/account/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /account/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateProfile(r.Context(), session, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidEmail):
			h.logger.Warn("PUT /account/profile - Invalid email: user=%s", session.UID)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, account.ErrEmailInUse):
			h.logger.Warn("PUT /account/profile - Email in use: user=%s", session.UID)
			handlers.RespondError(w, http.StatusConflict, msgEmailInUse)

		case errors.Is(err, account.ErrGoogleAccount):
			h.logger.Warn("PUT /account/profile - Google account restriction: user=%s", session.UID)
			handlers.RespondForbidden(w, msgGoogleAccount)

		default:
			h.logger.Error("PUT /account/profile - Internal error: user=%s: %v", session.UID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("PUT /account/profile - Profile updated: user=%s", session.UID)
	handlers.RespondJSON(w, http.StatusOK, &ProfileResponse{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
}
