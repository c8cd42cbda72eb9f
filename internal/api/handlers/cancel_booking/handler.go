package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPortal/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPortal/internal/domain"
	"github.com/m04kA/SMC-BookingPortal/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingSession   = "отсутствует сессия пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgCancelFailed     = "не удалось отменить бронирование"
	msgInternal         = "внутренняя ошибка сервера"
)

// CancelResponse результат отмены бронирования
type CancelResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	vars := mux.Vars(r)
	bookingID := domain.BookingID(vars["bookingId"])
	if bookingID.IsZero() {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Чужие бронирования отменять нельзя. Проверка владельца возможна
	// только когда проба вернула саму запись.
	probe, err := h.service.ExistenceCheck(r.Context(), bookingID)
	if err == nil && probe.Record != nil && probe.Record.UserEmail != session.Email {
		h.logger.Warn("DELETE /bookings/{id} - Forbidden: id=%s, user=%s", bookingID, session.UID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, bookings.ErrCancellationFailed):
			h.logger.Error("DELETE /bookings/{id} - Cancellation failed: id=%s: %v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCancelFailed)

		default:
			h.logger.Error("DELETE /bookings/{id} - Internal error: id=%s: %v", bookingID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: id=%s, user=%s", bookingID, session.UID)
	handlers.RespondJSON(w, http.StatusOK, &CancelResponse{
		ID:        bookingID.String(),
		Cancelled: true,
	})
}
