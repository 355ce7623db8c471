package http

import (
	"github.com/labstack/echo/v4"
)

// NewEcho returns an echo instance with the validator and error renderer installed.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler
	return e
}

func RegisterRoutes(e *echo.Echo, h *Handler, ch *ContractHandler) {
	e.GET("/health", h.Health)

	g := e.Group("/contracts")
	g.GET("", ch.ListContracts)
	g.POST("", ch.CreateContract)
	g.GET("/:id", ch.GetContract)
	g.PUT("/:id", ch.UpdateContract)
	g.DELETE("/:id", ch.DeleteContract)
}
