package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qiraat-compare-api/internal/services"
)

// NavigationHandler handles juz and Mushaf-page listing endpoints
type NavigationHandler struct {
	navigation *services.NavigationService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navigation *services.NavigationService) *NavigationHandler {
	return &NavigationHandler{navigation: navigation}
}

// GetJuz handles GET /juz/:juz
func (h *NavigationHandler) GetJuz(c echo.Context) error {
	juz, err := parseIntValue(c.Param("juz"), "juz")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.navigation.VersesByJuz(c.Request().Context(), juz, c.QueryParam("qiraat"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetPage handles GET /page/:page
func (h *NavigationHandler) GetPage(c echo.Context) error {
	page, err := parseIntValue(c.Param("page"), "page")
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.navigation.VersesByPage(c.Request().Context(), page, c.QueryParam("qiraat"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers navigation routes
func (h *NavigationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/juz/:juz", h.GetJuz)
	g.GET("/page/:page", h.GetPage)
}
