package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-BookingPortal/internal/api/handlers"
)

const (
	msgInternal = "внутренняя ошибка сервера"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Internal error: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(list))
}
