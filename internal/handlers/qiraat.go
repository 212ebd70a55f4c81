package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qiraat-compare-api/internal/services"
)

// QiraatHandler handles the recitation-variant catalog endpoint
type QiraatHandler struct {
	qiraat *services.QiraatService
}

// NewQiraatHandler creates a new qiraat handler
func NewQiraatHandler(qiraat *services.QiraatService) *QiraatHandler {
	return &QiraatHandler{qiraat: qiraat}
}

// ListQiraat handles GET /qiraat
func (h *QiraatHandler) ListQiraat(c echo.Context) error {
	result, err := h.qiraat.ListQiraat(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers qiraat routes
func (h *QiraatHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/qiraat", h.ListQiraat)
}
