package store

import (
	"sync"
	"time"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	apperrors "alvs-system/pkg/errors"

	"github.com/google/uuid"
)

// Store holds the canonical in-memory collections for the current session.
// All mutation goes through the methods below under the lock, which is the Go
// rendering of the original single event-loop thread: a reader never observes
// a service record without its status change, or vice versa.
type Store struct {
	mu         sync.RWMutex
	equipments []entities.Equipment
	customers  []entities.Customer
	suppliers  []entities.Supplier

	codePrefix string
}

func New(codePrefix string) *Store {
	return &Store{
		equipments: []entities.Equipment{},
		customers:  []entities.Customer{},
		suppliers:  []entities.Supplier{},
		codePrefix: codePrefix,
	}
}

// Equipments returns a snapshot copy of the equipment collection.
func (s *Store) Equipments() []entities.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyEquipments(s.equipments)
}

// Customers returns a snapshot copy of the customer collection.
func (s *Store) Customers() []entities.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Suppliers returns a snapshot copy of the supplier collection.
func (s *Store) Suppliers() []entities.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Supplier, len(s.suppliers))
	copy(out, s.suppliers)
	return out
}

// FindEquipment returns the equipment with the given id.
func (s *Store) FindEquipment(id string) (entities.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.equipments {
		if s.equipments[i].ID == id {
			return copyEquipment(s.equipments[i]), nil
		}
	}
	return entities.Equipment{}, apperrors.ErrEquipmentNotFound
}

// FindCustomer returns the customer with the given id.
func (s *Store) FindCustomer(id string) (entities.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			return s.customers[i], nil
		}
	}
	return entities.Customer{}, apperrors.ErrCustomerNotFound
}

// ReplaceEquipments discards the collection and installs the given one.
// Used after a successful remote pull; the remote is the trusted source, so
// items are taken as-is.
func (s *Store) ReplaceEquipments(items []entities.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []entities.Equipment{}
	}
	s.equipments = items
}

// ReplaceCustomers discards the collection and installs the given one.
func (s *Store) ReplaceCustomers(items []entities.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []entities.Customer{}
	}
	s.customers = items
}

// ReplaceSuppliers discards the collection and installs the given one.
func (s *Store) ReplaceSuppliers(items []entities.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []entities.Supplier{}
	}
	s.suppliers = items
}

// AddEquipment constructs a new equipment with a fresh identity and business
// code, default status Pending and no service records, and inserts it at the
// front of the collection (most-recent-first display order).
func (s *Store) AddEquipment(in dto.CreateEquipmentDTO) (entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, err := s.generateCodeLocked()
	if err != nil {
		return entities.Equipment{}, err
	}

	item := entities.Equipment{
		ID:             uuid.NewString(),
		Code:           code,
		Name:           in.Name,
		Brand:          in.Brand,
		Model:          in.Model,
		Manufacturer:   in.Manufacturer,
		SerialNumber:   in.SerialNumber,
		EntryDate:      time.Now().UTC(),
		Observations:   in.Observations,
		Status:         entities.StatusPending,
		CustomerID:     in.CustomerID,
		SupplierID:     in.SupplierID,
		ServiceRecords: []entities.ServiceRecord{},
	}

	s.equipments = append([]entities.Equipment{item}, s.equipments...)
	return copyEquipment(item), nil
}

// AddCustomer constructs a new customer and inserts it at the front.
func (s *Store) AddCustomer(in dto.CreateCustomerDTO) entities.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := entities.Customer{
		ID:      uuid.NewString(),
		Name:    in.Name,
		TaxID:   in.TaxID,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}

	s.customers = append([]entities.Customer{item}, s.customers...)
	return item
}

// AddSupplier constructs a new supplier and inserts it at the front.
func (s *Store) AddSupplier(in dto.CreateSupplierDTO) entities.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := entities.Supplier{
		ID:          uuid.NewString(),
		Name:        in.Name,
		TaxID:       in.TaxID,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		EquipmentID: in.EquipmentID,
	}

	s.suppliers = append([]entities.Supplier{item}, s.suppliers...)
	return item
}

// AddServiceRecord prepends a new record to the equipment's sequence and sets
// the equipment status in the same step. If the equipment id does not resolve
// or the status is not a known workflow state, nothing is mutated.
func (s *Store) AddServiceRecord(equipmentID string, in dto.CreateServiceRecordDTO) (entities.Equipment, entities.ServiceRecord, error) {
	status := entities.EquipmentStatus(in.NewStatus)
	if !status.Valid() {
		return entities.Equipment{}, entities.ServiceRecord{}, apperrors.NewInvalidInputError("invalid equipment status %q", in.NewStatus)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.equipments {
		if s.equipments[i].ID != equipmentID {
			continue
		}

		record := entities.ServiceRecord{
			ID:           uuid.NewString(),
			EquipmentID:  equipmentID,
			Date:         time.Now().UTC(),
			Description:  in.Description,
			ServiceType:  in.ServiceType,
			Resolution:   in.Resolution,
			Resolved:     in.Resolved,
			TechnicianID: in.TechnicianID,
		}

		s.equipments[i].ServiceRecords = append([]entities.ServiceRecord{record}, s.equipments[i].ServiceRecords...)
		s.equipments[i].Status = status

		return copyEquipment(s.equipments[i]), record, nil
	}

	return entities.Equipment{}, entities.ServiceRecord{}, apperrors.ErrEquipmentNotFound
}

func copyEquipment(e entities.Equipment) entities.Equipment {
	out := e
	out.ServiceRecords = make([]entities.ServiceRecord, len(e.ServiceRecords))
	copy(out.ServiceRecords, e.ServiceRecords)
	return out
}

func copyEquipments(items []entities.Equipment) []entities.Equipment {
	out := make([]entities.Equipment, len(items))
	for i := range items {
		out[i] = copyEquipment(items[i])
	}
	return out
}
