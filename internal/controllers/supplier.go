package controllers

import (
	"net/http"

	"alvs-system/internal/dto"
	"alvs-system/internal/services"
	apperrors "alvs-system/pkg/errors"
	"alvs-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SupplierController struct {
	supplierService services.SupplierServiceInterface
	logger          *zap.Logger
}

func NewSupplierController(service services.SupplierServiceInterface, logger *zap.Logger) *SupplierController {
	return &SupplierController{
		supplierService: service,
		logger:          logger,
	}
}

func (c *SupplierController) GetSuppliers(ctx echo.Context) error {
	res, err := c.supplierService.GetSuppliers(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetSuppliers: listing failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not list suppliers", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "suppliers listed", http.StatusOK)
}

func (c *SupplierController) CreateSupplier(ctx echo.Context) error {
	var in dto.CreateSupplierDTO
	if err := ctx.Bind(&in); err != nil {
		c.logger.Error("CreateSupplier: bind failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&in); err != nil {
		c.logger.Error("CreateSupplier: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.supplierService.CreateSupplier(ctx.Request().Context(), in)
	if err != nil {
		c.logger.Error("CreateSupplier: create failed", zap.Any("payload", in), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not create supplier", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "supplier created", http.StatusCreated)
}
