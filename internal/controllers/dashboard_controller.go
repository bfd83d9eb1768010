package controllers

import (
	"net/http"

	"alvs-system/internal/services"
	apperrors "alvs-system/pkg/errors"
	"alvs-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(service services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: service,
		logger:           logger,
	}
}

func (c *DashboardController) GetStats(ctx echo.Context) error {
	res, err := c.dashboardService.GetStats(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetStats: computing stats failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not compute dashboard stats", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "dashboard stats", http.StatusOK)
}
