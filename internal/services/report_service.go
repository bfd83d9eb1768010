package services

import (
	"context"

	"alvs-system/internal/entities"
	"alvs-system/internal/store"

	"go.uber.org/zap"
)

// EquipmentReport is the fully-populated data handed to the report renderer.
// The renderer has no feedback path into the entity store.
type EquipmentReport struct {
	Equipment    entities.Equipment
	CustomerName string
}

type ReportServiceInterface interface {
	GetEquipmentReport(ctx context.Context, equipmentID string) (EquipmentReport, error)
}

type ReportService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewReportService(st *store.Store, logger *zap.Logger) *ReportService {
	return &ReportService{
		store:  st,
		logger: logger,
	}
}

// GetEquipmentReport resolves the equipment and its owning customer. A
// dangling customer reference renders as "unknown" rather than failing, the
// same way the UI does.
func (s *ReportService) GetEquipmentReport(ctx context.Context, equipmentID string) (EquipmentReport, error) {
	equip, err := s.store.FindEquipment(equipmentID)
	if err != nil {
		return EquipmentReport{}, err
	}

	customerName := "unknown"
	if equip.CustomerID != "" {
		if customer, err := s.store.FindCustomer(equip.CustomerID); err == nil {
			customerName = customer.Name
		}
	}

	return EquipmentReport{
		Equipment:    equip,
		CustomerName: customerName,
	}, nil
}
