package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/service"
)

// ReportHandler handles the inventory report endpoint.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetInventoryReport godoc
// @Summary Get the caller's inventory report
// @Description Aggregates stock levels, total value, low-stock items and
// @Description the full change history from the latest committed rows.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Report
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports/inventory [get]
func (h *ReportHandler) GetInventoryReport(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	report, err := h.reportService.BuildReport(c.Request().Context(), principal)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, report)
}
