package controllers

import (
	"errors"
	"net/http"

	"alvs-system/internal/dto"
	"alvs-system/internal/services"
	apperrors "alvs-system/pkg/errors"
	"alvs-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(service services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	query := ctx.QueryParam("q")

	res, err := c.equipmentService.GetEquipments(ctx.Request().Context(), query)
	if err != nil {
		c.logger.Error("GetEquipments: listing failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not list equipment", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "equipment listed", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			return utils.ErrorResponse(
				ctx,
				apperrors.NewHttpError(http.StatusNotFound, "equipment not found", err,
					map[string]interface{}{"id": ctx.Param("id")}),
				c.logger,
			)
		}
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not find equipment", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "equipment found", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var in dto.CreateEquipmentDTO
	if err := ctx.Bind(&in); err != nil {
		c.logger.Error("CreateEquipment: bind failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&in); err != nil {
		c.logger.Error("CreateEquipment: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), in)
	if err != nil {
		c.logger.Error("CreateEquipment: create failed", zap.Any("payload", in), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not create equipment", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "equipment created", http.StatusCreated)
}

func (c *EquipmentController) AddServiceRecord(ctx echo.Context) error {
	equipmentID := ctx.Param("id")

	var in dto.CreateServiceRecordDTO
	if err := ctx.Bind(&in); err != nil {
		c.logger.Error("AddServiceRecord: bind failed", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&in); err != nil {
		c.logger.Error("AddServiceRecord: validation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.AddServiceRecord(ctx.Request().Context(), equipmentID, in)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			return utils.ErrorResponse(
				ctx,
				apperrors.NewHttpError(http.StatusNotFound, "equipment not found", err,
					map[string]interface{}{"id": equipmentID}),
				c.logger,
			)
		}
		var invalid *apperrors.InvalidInputError
		if errors.As(err, &invalid) {
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		c.logger.Error("AddServiceRecord: create failed", zap.String("equipmentId", equipmentID), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusInternalServerError, "could not add service record", err, nil),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "service record added", http.StatusCreated)
}
