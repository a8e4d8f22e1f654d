package router

import (
	"net/http"

	"github.com/deppfellow/employee-service/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerEmployeeRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("", h.Health.Liveness)
	api.GET("/", h.Health.Liveness)

	employees := api.Group("/employees")
	eh := h.Employees

	employees.GET("", handler.Handle(eh.Handler, eh.ListEmployees, http.StatusOK))
	employees.POST("", handler.Handle(eh.Handler, eh.CreateEmployee, http.StatusCreated))
	employees.GET("/:id", handler.Handle(eh.Handler, eh.GetEmployee, http.StatusOK))
	employees.PUT("/:id", handler.Handle(eh.Handler, eh.UpdateEmployee, http.StatusOK))
	employees.DELETE("/:id", handler.Handle(eh.Handler, eh.DeleteEmployee, http.StatusOK))
}
