package get_user_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-BookingPortal/internal/api/middleware"
	"github.com/m04kA/SMC-BookingPortal/internal/service/bookings/models"
)

const (
	msgMissingSession = "отсутствует сессия пользователя"
	msgInternal       = "не удалось загрузить бронирования"
)

type Handler struct {
	service      BookingService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service BookingService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingSession)
		return
	}

	list, err := h.service.FetchForUser(r.Context(), session.Email)
	if err != nil {
		h.logger.Error("GET /bookings - Internal error: user=%s: %v", session.UID, err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	tabs := models.Partition(list, h.timeProvider.Now())
	handlers.RespondJSON(w, http.StatusOK, &ListResponse{
		Upcoming: toResponses(tabs.Upcoming),
		Past:     toResponses(tabs.Past),
	})
}
