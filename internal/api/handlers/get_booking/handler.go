package get_booking

import (
	"errors"
	"net/http"
	"time"

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
	msgInternal         = "внутренняя ошибка сервера"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID           string  `json:"id"`
	UserEmail    string  `json:"userEmail"`
	ScheduleTime string  `json:"scheduleTime"` // RFC3339
	Status       string  `json:"status"`
	ServiceTitle string  `json:"serviceTitle"`
	Duration     int     `json:"duration"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl"`
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

// Handle GET /api/v1/bookings/{bookingId}
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

	result, err := h.service.ExistenceCheck(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)
		default:
			h.logger.Error("GET /bookings/{id} - Internal error: id=%s: %v", bookingID, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	// Существование без самой записи означает, что хранилище отвечало
	// уклончиво. Показать тут нечего.
	if !result.Exists || result.Record == nil {
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	booking := result.Record
	if booking.UserEmail != session.Email {
		h.logger.Warn("GET /bookings/{id} - Forbidden: id=%s, user=%s", bookingID, session.UID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		ID:           booking.ID.String(),
		UserEmail:    booking.UserEmail,
		ScheduleTime: booking.ScheduleTime.Format(time.RFC3339),
		Status:       string(booking.Status),
		ServiceTitle: booking.Service.Title,
		Duration:     booking.Service.DurationMinutes,
		Price:        booking.Service.Price,
		ImageURL:     booking.Service.ImageURL,
	})
}
