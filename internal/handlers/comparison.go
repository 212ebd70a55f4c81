package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qiraat-compare-api/internal/services"
)

// ComparisonHandler handles the cross-qiraat comparison endpoint
type ComparisonHandler struct {
	comparison *services.ComparisonService
}

// NewComparisonHandler creates a new comparison handler
func NewComparisonHandler(comparison *services.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{comparison: comparison}
}

// Compare handles GET /compare?surah=&ayah=
func (h *ComparisonHandler) Compare(c echo.Context) error {
	surah, err := parseIntValue(c.QueryParam("surah"), "surah")
	if err != nil {
		return respondError(c, err)
	}
	ayah, err := parseIntValue(c.QueryParam("ayah"), "ayah")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.comparison.Compare(c.Request().Context(), surah, ayah)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers comparison routes
func (h *ComparisonHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/compare", h.Compare)
}
