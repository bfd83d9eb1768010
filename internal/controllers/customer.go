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

type CustomerController struct {
	customerService services.CustomerServiceInterface
	logger          *zap.Logger
}

func NewCustomerController(service services.CustomerServiceInterface, logger *zap.Logger) *CustomerController {
	return &CustomerController{
		customerService: service,
		logger:          logger,
	}
}

func (c *CustomerController) GetCustomers(ctx echo.Context) error {
	res, err := c.customerService.GetCustomers(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetCustomers: listing failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not list customers", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "customers listed", http.StatusOK)
}

func (c *CustomerController) CreateCustomer(ctx echo.Context) error {
	var in dto.CreateCustomerDTO
	if err := ctx.Bind(&in); err != nil {
		c.logger.Error("CreateCustomer: bind failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&in); err != nil {
		c.logger.Error("CreateCustomer: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.customerService.CreateCustomer(ctx.Request().Context(), in)
	if err != nil {
		c.logger.Error("CreateCustomer: create failed", zap.Any("payload", in), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not create customer", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "customer created", http.StatusCreated)
}
