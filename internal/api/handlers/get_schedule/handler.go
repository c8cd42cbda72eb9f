package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
	getSchedule "github.com/m04kA/SMC-BookingPortal/internal/usecase/get_schedule"
)

const (
	msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInternal     = "внутренняя ошибка сервера"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule?month=YYYY-MM&selected=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getSchedule.Request{
		Month:    r.URL.Query().Get("month"),
		Selected: r.URL.Query().Get("selected"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidMonth):
			h.logger.Warn("GET /schedule - Invalid month: %q", req.Month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getSchedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule - Invalid selected date: %q", req.Selected)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule - Internal error: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
