package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qiraat-compare-api/internal/services"
)

// SearchHandler handles the trigram text search endpoint
type SearchHandler struct {
	search *services.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /search?q=&qiraat=&limit=
func (h *SearchHandler) Search(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		var err error
		limit, err = parseIntValue(raw, "limit")
		if err != nil {
			return respondError(c, err)
		}
	}

	result, err := h.search.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("qiraat"), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
}
