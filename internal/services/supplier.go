package services

import (
	"context"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	"alvs-system/internal/store"
	"alvs-system/internal/sync"

	"go.uber.org/zap"
)

type SupplierServiceInterface interface {
	GetSuppliers(ctx context.Context) ([]entities.Supplier, error)
	CreateSupplier(ctx context.Context, in dto.CreateSupplierDTO) (entities.Supplier, error)
}

// SupplierService works against local state only; suppliers do not take part
// in remote synchronization.
type SupplierService struct {
	store        *store.Store
	synchronizer *sync.Synchronizer
	logger       *zap.Logger
}

func NewSupplierService(st *store.Store, synchronizer *sync.Synchronizer, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		store:        st,
		synchronizer: synchronizer,
		logger:       logger,
	}
}

func (s *SupplierService) GetSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	return s.store.Suppliers(), nil
}

func (s *SupplierService) CreateSupplier(ctx context.Context, in dto.CreateSupplierDTO) (entities.Supplier, error) {
	item, err := s.synchronizer.CreateSupplier(ctx, in)
	if err != nil {
		s.logger.Error("could not create supplier", zap.Error(err))
		return entities.Supplier{}, err
	}
	s.logger.Info("supplier created", zap.String("id", item.ID))
	return item, nil
}
