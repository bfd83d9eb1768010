package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"alvs-system/internal/services"
	apperrors "alvs-system/pkg/errors"
	"alvs-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetEquipmentReport renders the service history of one equipment as an XLSX
// download: an info block on top, then one row per service record.
func (c *ReportController) GetEquipmentReport(ctx echo.Context) error {
	equipmentID := ctx.Param("id")

	report, err := c.reportService.GetEquipmentReport(ctx.Request().Context(), equipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEquipmentNotFound) {
			return utils.ErrorResponse(
				ctx,
				apperrors.NewHttpError(http.StatusNotFound, "equipment not found", err,
					map[string]interface{}{"id": equipmentID}),
				c.logger,
			)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return c.respondWithXLSX(ctx, report)
}

var serviceHeaders = []string{
	"Date", "Type", "Description", "Resolution", "Resolved", "Technician",
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, report services.EquipmentReport) error {
	equip := report.Equipment

	f := excelize.NewFile()
	sheet := "Service Report"
	f.SetSheetName("Sheet1", sheet)

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	info := [][]interface{}{
		{"Code", equip.Code},
		{"Equipment", equip.Name},
		{"Brand / Model", equip.Brand + " " + equip.Model},
		{"Serial Number", equip.SerialNumber},
		{"Customer", report.CustomerName},
		{"Status", string(equip.Status)},
		{"Entry Date", equip.EntryDate.Format("02.01.2006")},
	}
	for i, row := range info {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetCellStyle(sheet, "A1", fmt.Sprintf("A%d", len(info)), bold)

	headerRow := len(info) + 2
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetSheetRow(sheet, cell, &serviceHeaders)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("F%d", headerRow), bold)

	for i, record := range equip.ServiceRecords {
		resolved := "no"
		if record.Resolved {
			resolved = "yes"
		}
		row := []interface{}{
			record.Date.Format("02.01.2006"),
			record.ServiceType,
			record.Description,
			record.Resolution,
			resolved,
			record.TechnicianID,
		}
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		f.SetSheetRow(sheet, cell, &row)
	}

	f.SetColWidth(sheet, "A", "A", 16)
	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "D", 45)
	f.SetColWidth(sheet, "F", "F", 20)

	fileName := fmt.Sprintf("equipment_%s_%s.xlsx", equip.Code, time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
