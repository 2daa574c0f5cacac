package handler

import (
	"net/http"
	"strconv"

	"boardingpass-service/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SuggestionHandler struct {
	suggestions *usecase.SuggestionService
}

func NewSuggestionHandler(suggestions *usecase.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

func (h *SuggestionHandler) Suggestions(c echo.Context) error {
	passenger := c.QueryParam("passenger")

	return c.JSON(http.StatusOK, SuggestionsResponse{
		Passenger:   passenger,
		Suggestions: h.suggestions.FieldSuggestions(c.Request().Context(), passenger),
	})
}

func (h *SuggestionHandler) UniqueValues(c echo.Context) error {
	field := c.Param("field")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return c.JSON(http.StatusOK, ValuesResponse{
		Field:  field,
		Values: h.suggestions.UniqueFieldValues(c.Request().Context(), field, limit),
	})
}
