package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPortal/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BookingPortal/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingSession     = "отсутствует сессия пользователя"
	msgInvalidEmail       = "некорректный адрес почты"
	msgInvalidService     = "не выбрана услуга"
	msgInvalidDate        = "некорректная или прошедшая дата бронирования"
	msgInvalidSlot        = "некорректный временной слот"
	msgStoreRejected      = "хранилище отклонило бронирование, проверьте данные"
	msgInternal           = "не удалось создать бронирование"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session.Email))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /bookings - Invalid email: user=%s", session.UID)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidService):
			h.logger.Warn("POST /bookings - Missing service reference: user=%s", session.UID)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date %q: user=%s", req.Date, session.UID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidSlot):
			h.logger.Warn("POST /bookings - Invalid slot %q: user=%s", req.SlotLabel, session.UID)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			status, msg := classifyStoreError(err)
			if status >= http.StatusInternalServerError {
				h.logger.Error("POST /bookings - Store error: %v", err)
			} else {
				h.logger.Warn("POST /bookings - Store rejected booking: %v", err)
			}
			handlers.RespondError(w, status, msg)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, user=%s", result.ID, session.UID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// classifyStoreError распознает типичные отказы удаленного хранилища
// по подстрокам текста ошибки. Хранилище не дает структурированных
// кодов, поэтому иного способа различить причину нет.
func classifyStoreError(err error) (int, string) {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "email"):
		return http.StatusBadRequest, msgInvalidEmail
	case strings.Contains(text, "service"):
		return http.StatusBadRequest, msgInvalidService
	case strings.Contains(text, "validation"), strings.Contains(text, "400"):
		return http.StatusBadRequest, msgStoreRejected
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
