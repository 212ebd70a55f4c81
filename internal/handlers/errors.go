package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/qiraat-compare-api/internal/apperr"
)

// ErrorResponse is the JSON error envelope for every failed request
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Error      string   `json:"error"`
	Message    string   `json:"message"`
	Issues     []string `json:"issues,omitempty"`
}

// respondError maps the query layer's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is a store failure: logged in full, surfaced
// as an opaque 500.
func respondError(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      "Bad Request",
			Message:    ve.Error(),
			Issues:     ve.Violations,
		})
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return c.JSON(http.StatusNotFound, ErrorResponse{
			StatusCode: http.StatusNotFound,
			Error:      "Not Found",
			Message:    nf.Error(),
		})
	}

	c.Logger().Errorf("query failed: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Error:      "Internal Server Error",
		Message:    "internal server error",
	})
}

// parseIntValue converts a required path or query parameter to an int,
// reporting a ValidationError so malformed input never reaches a service
func parseIntValue(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperr.NewValidation(fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}
