package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"alvs-system/internal/services"
	"alvs-system/internal/store"
	syncer "alvs-system/internal/sync"
)

// InitRouter assembles the service layer on top of the shared entity store and
// registers every route group under /api.
func InitRouter(e *echo.Echo, st *store.Store, synchronizer *syncer.Synchronizer, logger *zap.Logger) {
	api := e.Group("/api")

	equipmentService := services.NewEquipmentService(st, synchronizer, logger)
	customerService := services.NewCustomerService(st, synchronizer, logger)
	supplierService := services.NewSupplierService(st, synchronizer, logger)
	dashboardService := services.NewDashboardService(st, logger)
	reportService := services.NewReportService(st, logger)

	runEquipmentRouter(api, equipmentService, logger)
	runCustomerRouter(api, customerService, logger)
	runSupplierRouter(api, supplierService, logger)
	runDashboardRouter(api, dashboardService, logger)
	runReportRouter(api, reportService, logger)
	runSyncRouter(api, st, synchronizer, logger)
}
