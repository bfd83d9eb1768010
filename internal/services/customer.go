package services

import (
	"context"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	"alvs-system/internal/store"
	"alvs-system/internal/sync"

	"go.uber.org/zap"
)

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context) ([]entities.Customer, error)
	CreateCustomer(ctx context.Context, in dto.CreateCustomerDTO) (entities.Customer, error)
}

type CustomerService struct {
	store        *store.Store
	synchronizer *sync.Synchronizer
	logger       *zap.Logger
}

func NewCustomerService(st *store.Store, synchronizer *sync.Synchronizer, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		store:        st,
		synchronizer: synchronizer,
		logger:       logger,
	}
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]entities.Customer, error) {
	return s.store.Customers(), nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, in dto.CreateCustomerDTO) (entities.Customer, error) {
	item, err := s.synchronizer.CreateCustomer(ctx, in)
	if err != nil {
		s.logger.Error("could not create customer", zap.Error(err))
		return entities.Customer{}, err
	}
	s.logger.Info("customer created", zap.String("id", item.ID))
	return item, nil
}
