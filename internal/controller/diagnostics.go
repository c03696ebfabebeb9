package controller

import (
	"net/http"
	"tender-marketplace-api/internal/service"

	"github.com/labstack/echo"
)

type diagnosticsRoutesHandler struct {
	diagnosticsService service.Diagnostics
}

func newDiagnosticRoutesHandler(outer *echo.Group, services *service.Services) *diagnosticsRoutesHandler {
	h := &diagnosticsRoutesHandler{diagnosticsService: services.Diagnostics}
	outer.GET("/ping", h.Ping)

	return h
}

func (h *diagnosticsRoutesHandler) Ping(c echo.Context) error {
	if err := h.diagnosticsService.Ping(); err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Database is not reachable"}); e != nil {
			return e
		}

		return err
	}

	return c.String(http.StatusOK, "ok")
}
