package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/controllers"
	"alvs-system/internal/store"
	syncer "alvs-system/internal/sync"
)

func runSyncRouter(api *echo.Group, st *store.Store, synchronizer *syncer.Synchronizer, logger *zap.Logger) {
	controller := controllers.NewSyncController(st, synchronizer, logger)

	api.GET("/sync/status", controller.GetStatus)
	api.POST("/sync", controller.Resync)
}
