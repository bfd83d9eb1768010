package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/controllers"
	"alvs-system/internal/services"
)

func runDashboardRouter(api *echo.Group, service services.DashboardServiceInterface, logger *zap.Logger) {
	controller := controllers.NewDashboardController(service, logger)

	api.GET("/dashboard/stats", controller.GetStats)
}
