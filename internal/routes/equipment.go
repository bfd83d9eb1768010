package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/controllers"
	"alvs-system/internal/services"
)

func runEquipmentRouter(api *echo.Group, service services.EquipmentServiceInterface, logger *zap.Logger) {
	controller := controllers.NewEquipmentController(service, logger)

	api.GET("/equipment", controller.GetEquipments)
	api.POST("/equipment", controller.CreateEquipment)
	api.GET("/equipment/:id", controller.FindEquipment)
	api.POST("/equipment/:id/services", controller.AddServiceRecord)
}
