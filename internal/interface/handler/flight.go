package handler

import (
	"errors"
	"net/http"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FlightHandler struct {
	submissions *usecase.FlightSubmissionService
}

func NewFlightHandler(submissions *usecase.FlightSubmissionService) *FlightHandler {
	return &FlightHandler{submissions: submissions}
}

// Submit accepts the travel form as JSON or as a url-encoded form
func (h *FlightHandler) Submit(c echo.Context) error {
	var submission entity.FlightSubmission
	if err := c.Bind(&submission); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	record, err := h.submissions.Submit(c.Request().Context(), submission)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation_error",
				Message: validationErr.Error(),
				Code:    http.StatusBadRequest,
				Fields:  validationErr.Fields,
			})
		case errors.Is(err, repository.ErrSubmitEndpointNotConfigured):
			return c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Error:   "submission_disabled",
				Message: err.Error(),
				Code:    http.StatusServiceUnavailable,
			})
		default:
			return c.JSON(http.StatusBadGateway, ErrorResponse{
				Error:   "submission_error",
				Message: "Failed to submit flight: " + err.Error(),
				Code:    http.StatusBadGateway,
			})
		}
	}

	return c.JSON(http.StatusAccepted, record)
}
