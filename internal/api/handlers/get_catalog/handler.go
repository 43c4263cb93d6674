package get_catalog

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
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

// Handle GET /api/v1/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSports(r.Context())
	if err != nil {
		h.logger.Error("GET /sports - Failed to list sports: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /sports - Catalog retrieved successfully: sports=%d", len(result.Sports))
	handlers.RespondJSON(w, http.StatusOK, result)
}
