package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ScanHandler struct {
	orchestrator *usecase.ScanOrchestrator
}

func NewScanHandler(orchestrator *usecase.ScanOrchestrator) *ScanHandler {
	return &ScanHandler{orchestrator: orchestrator}
}

// Scan turns a decoded barcode payload into form suggestions
func (h *ScanHandler) Scan(c echo.Context) error {
	var payload entity.RawBarcodePayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}
	if strings.TrimSpace(payload.Text) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "text is required",
			Code:    http.StatusBadRequest,
		})
	}

	result, err := h.orchestrator.ProcessScan(c.Request().Context(), payload)
	if errors.Is(err, usecase.ErrUnsupportedFormat) {
		return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
			Error:   "unsupported_format",
			Message: err.Error(),
			Code:    http.StatusUnsupportedMediaType,
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "scan_error",
			Message: "Failed to process scan: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, result)
}

// RecentScans lists the latest scan log entries
func (h *ScanHandler) RecentScans(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := h.orchestrator.RecentScans(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "scan_log_error",
			Message: err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}
	return c.JSON(http.StatusOK, records)
}
