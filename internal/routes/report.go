package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/controllers"
	"alvs-system/internal/services"
)

func runReportRouter(api *echo.Group, service services.ReportServiceInterface, logger *zap.Logger) {
	controller := controllers.NewReportController(service, logger)

	api.GET("/equipment/:id/report", controller.GetEquipmentReport)
}
