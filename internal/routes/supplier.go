package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/controllers"
	"alvs-system/internal/services"
)

func runSupplierRouter(api *echo.Group, service services.SupplierServiceInterface, logger *zap.Logger) {
	controller := controllers.NewSupplierController(service, logger)

	api.GET("/suppliers", controller.GetSuppliers)
	api.POST("/suppliers", controller.CreateSupplier)
}
