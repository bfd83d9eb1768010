package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/controllers"
	"alvs-system/internal/services"
)

func runCustomerRouter(api *echo.Group, service services.CustomerServiceInterface, logger *zap.Logger) {
	controller := controllers.NewCustomerController(service, logger)

	api.GET("/customers", controller.GetCustomers)
	api.POST("/customers", controller.CreateCustomer)
}
