package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qiraat-compare-api/internal/services"
)

// SurahHandler handles surah catalog endpoints
type SurahHandler struct {
	surahs *services.SurahService
}

// NewSurahHandler creates a new surah handler
func NewSurahHandler(surahs *services.SurahService) *SurahHandler {
	return &SurahHandler{surahs: surahs}
}

// ListSurahs handles GET /surahs
func (h *SurahHandler) ListSurahs(c echo.Context) error {
	result, err := h.surahs.ListSurahs(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetSurah handles GET /surahs/:surah
func (h *SurahHandler) GetSurah(c echo.Context) error {
	number, err := parseIntValue(c.Param("surah"), "surah")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.surahs.GetSurah(c.Request().Context(), number, c.QueryParam("qiraat"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers surah routes
func (h *SurahHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/surahs", h.ListSurahs)
	g.GET("/surahs/:surah", h.GetSurah)
}
