package services

import (
	"context"
	"strings"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	"alvs-system/internal/store"
	"alvs-system/internal/sync"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, query string) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (entities.Equipment, error)
	CreateEquipment(ctx context.Context, in dto.CreateEquipmentDTO) (entities.Equipment, error)
	AddServiceRecord(ctx context.Context, equipmentID string, in dto.CreateServiceRecordDTO) (entities.Equipment, error)
}

type EquipmentService struct {
	store        *store.Store
	synchronizer *sync.Synchronizer
	logger       *zap.Logger
}

func NewEquipmentService(st *store.Store, synchronizer *sync.Synchronizer, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{
		store:        st,
		synchronizer: synchronizer,
		logger:       logger,
	}
}

// GetEquipments lists the collection, optionally filtered by a search query
// matched against name and business code.
func (s *EquipmentService) GetEquipments(ctx context.Context, query string) ([]entities.Equipment, error) {
	items := s.store.Equipments()
	if query == "" {
		return items, nil
	}

	q := strings.ToLower(query)
	filtered := make([]entities.Equipment, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) || strings.Contains(strings.ToLower(item.Code), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (entities.Equipment, error) {
	return s.store.FindEquipment(id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, in dto.CreateEquipmentDTO) (entities.Equipment, error) {
	item, err := s.synchronizer.CreateEquipment(ctx, in)
	if err != nil {
		s.logger.Error("could not create equipment", zap.Error(err))
		return entities.Equipment{}, err
	}
	s.logger.Info("equipment created",
		zap.String("id", item.ID),
		zap.String("code", item.Code),
	)
	return item, nil
}

func (s *EquipmentService) AddServiceRecord(ctx context.Context, equipmentID string, in dto.CreateServiceRecordDTO) (entities.Equipment, error) {
	updated, err := s.synchronizer.AddServiceRecord(ctx, equipmentID, in)
	if err != nil {
		s.logger.Error("could not add service record",
			zap.String("equipmentId", equipmentID),
			zap.Error(err),
		)
		return entities.Equipment{}, err
	}
	s.logger.Info("service record added",
		zap.String("equipmentId", equipmentID),
		zap.String("newStatus", string(updated.Status)),
	)
	return updated, nil
}
