package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetAttendanceReports(w http.ResponseWriter, r *http.Request)
	GetTeamAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReports implements ReportHandler.
func (h *reportHandlerImpl) GetAttendanceReports(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.reportService.GetAttendanceReports(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamAttendance implements ReportHandler.
func (h *reportHandlerImpl) GetTeamAttendance(w http.ResponseWriter, r *http.Request) {
	department := chi.URLParam(r, "department")
	date := r.URL.Query().Get("date")

	result, err := h.reportService.GetTeamAttendance(r.Context(), department, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
