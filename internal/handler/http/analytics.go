package http

import (
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/analytics"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// GetStats implements AnalyticsHandler.
func (h *analyticsHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
