package sync

import (
	"context"
	"sync"
	"time"

	"alvs-system/internal/dto"
	"alvs-system/internal/entities"
	"alvs-system/internal/mirror"
	"alvs-system/internal/store"

	"go.uber.org/zap"
)

// State of the synchronizer for one logical session. Synced and Offline are
// both re-enterable: a user-triggered resynchronize goes back through Pulling.
type State string

const (
	StateUninitialized State = "uninitialized"
	StatePulling       State = "pulling"
	StateSynced        State = "synced"
	StateOffline       State = "offline"
)

// RemoteAPI is the surface of the remote backend the synchronizer needs.
// Suppliers are absent on purpose: the remote has no supplier endpoints, so
// supplier data never crosses the network boundary.
type RemoteAPI interface {
	FetchEquipments(ctx context.Context) ([]entities.Equipment, error)
	FetchCustomers(ctx context.Context) ([]entities.Customer, error)
	PushEquipment(ctx context.Context, item entities.Equipment) error
	PushCustomer(ctx context.Context, item entities.Customer) error
	PushService(ctx context.Context, record entities.ServiceRecord, newStatus entities.EquipmentStatus) error
}

// Synchronizer keeps the entity store, the persistence mirror and the remote
// API coherent: pull-on-start with fallback to the mirror, and optimistic
// local mutations pushed to the remote without blocking the caller.
type Synchronizer struct {
	store       *store.Store
	mirror      *mirror.Mirror
	remote      RemoteAPI
	logger      *zap.Logger
	seedOnEmpty bool
	pushTimeout time.Duration

	mu      sync.Mutex
	state   State
	pullSeq uint64

	pushes sync.WaitGroup
}

func New(st *store.Store, m *mirror.Mirror, remote RemoteAPI, logger *zap.Logger, seedOnEmpty bool, pushTimeout time.Duration) *Synchronizer {
	return &Synchronizer{
		store:       st,
		mirror:      m,
		remote:      remote,
		logger:      logger.Named("synchronizer"),
		seedOnEmpty: seedOnEmpty,
		pushTimeout: pushTimeout,
		state:       StateUninitialized,
	}
}

// State returns the synchronizer's current state.
func (s *Synchronizer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start performs the cold-start sequence: suppliers are restored from the
// mirror unconditionally (they are local-only data), then a full pull runs.
func (s *Synchronizer) Start(ctx context.Context) {
	var suppliers []entities.Supplier
	if found, err := s.mirror.Load(ctx, mirror.KindSuppliers, &suppliers); err != nil {
		s.logger.Warn("could not restore suppliers from mirror", zap.Error(err))
	} else if found {
		s.store.ReplaceSuppliers(suppliers)
	}

	s.Pull(ctx)
}

// Pull reconciles the entity store with the remote: all read-all requests
// must succeed and decode, otherwise the store is restored from the mirror
// (or from the built-in seed data on a first run). Failures never escape as
// panics or unhandled errors; the outcome is reported via the state.
//
// Overlapping pulls are resolved with a sequence number: only the most
// recently started pull is allowed to apply its result, a stale response is
// dropped instead of overwriting newer data.
func (s *Synchronizer) Pull(ctx context.Context) State {
	s.mu.Lock()
	s.pullSeq++
	seq := s.pullSeq
	s.state = StatePulling
	s.mu.Unlock()

	equipments, err := s.remote.FetchEquipments(ctx)
	var customers []entities.Customer
	if err == nil {
		customers, err = s.remote.FetchCustomers(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.pullSeq {
		s.logger.Warn("discarding stale pull result", zap.Uint64("seq", seq))
		return s.state
	}

	if err != nil {
		s.logger.Warn("pull failed, falling back to local mirror", zap.Error(err))
		s.restoreFromMirror(ctx)
		s.state = StateOffline
		return s.state
	}

	s.store.ReplaceEquipments(equipments)
	s.store.ReplaceCustomers(customers)
	s.saveMirror(ctx, mirror.KindEquipments, s.store.Equipments())
	s.saveMirror(ctx, mirror.KindCustomers, s.store.Customers())

	s.logger.Info("pull complete",
		zap.Int("equipments", len(equipments)),
		zap.Int("customers", len(customers)),
	)
	s.state = StateSynced
	return s.state
}

// CreateEquipment applies the mutation optimistically, mirrors it, and pushes
// it to the remote in the background. The push outcome never rolls the local
// state back.
func (s *Synchronizer) CreateEquipment(ctx context.Context, in dto.CreateEquipmentDTO) (entities.Equipment, error) {
	item, err := s.store.AddEquipment(in)
	if err != nil {
		return entities.Equipment{}, err
	}

	s.saveMirror(ctx, mirror.KindEquipments, s.store.Equipments())
	s.asyncPush("add_equipment", func(ctx context.Context) error {
		return s.remote.PushEquipment(ctx, item)
	})
	return item, nil
}

// CreateCustomer applies the mutation optimistically, mirrors it, and pushes
// it to the remote in the background.
func (s *Synchronizer) CreateCustomer(ctx context.Context, in dto.CreateCustomerDTO) (entities.Customer, error) {
	item := s.store.AddCustomer(in)

	s.saveMirror(ctx, mirror.KindCustomers, s.store.Customers())
	s.asyncPush("add_customer", func(ctx context.Context) error {
		return s.remote.PushCustomer(ctx, item)
	})
	return item, nil
}

// CreateSupplier applies the mutation optimistically and mirrors it.
// Suppliers are never pushed: the remote API has no supplier endpoints.
func (s *Synchronizer) CreateSupplier(ctx context.Context, in dto.CreateSupplierDTO) (entities.Supplier, error) {
	item := s.store.AddSupplier(in)
	s.saveMirror(ctx, mirror.KindSuppliers, s.store.Suppliers())
	return item, nil
}

// AddServiceRecord prepends a record to the equipment and moves its status in
// one local step, then mirrors and pushes. A dangling equipment id is
// reported to the caller and leaves the store untouched.
func (s *Synchronizer) AddServiceRecord(ctx context.Context, equipmentID string, in dto.CreateServiceRecordDTO) (entities.Equipment, error) {
	updated, record, err := s.store.AddServiceRecord(equipmentID, in)
	if err != nil {
		return entities.Equipment{}, err
	}

	s.saveMirror(ctx, mirror.KindEquipments, s.store.Equipments())
	newStatus := updated.Status
	s.asyncPush("add_service", func(ctx context.Context) error {
		return s.remote.PushService(ctx, record, newStatus)
	})
	return updated, nil
}

// Wait blocks until every in-flight push has finished. Used on shutdown and
// by tests; the request path never calls it.
func (s *Synchronizer) Wait() {
	s.pushes.Wait()
}

func (s *Synchronizer) restoreFromMirror(ctx context.Context) {
	var equipments []entities.Equipment
	if found, err := s.mirror.Load(ctx, mirror.KindEquipments, &equipments); err != nil {
		s.logger.Warn("could not restore equipments from mirror", zap.Error(err))
	} else if found {
		s.store.ReplaceEquipments(equipments)
	}

	var customers []entities.Customer
	found, err := s.mirror.Load(ctx, mirror.KindCustomers, &customers)
	if err != nil {
		s.logger.Warn("could not restore customers from mirror", zap.Error(err))
		return
	}
	if found {
		s.store.ReplaceCustomers(customers)
		return
	}
	if s.seedOnEmpty {
		s.store.ReplaceCustomers(store.SeedCustomers())
	}
}

// saveMirror writes through to the durable cache. Losing the mirror degrades
// offline resilience but must not corrupt or block the live store, so errors
// are only logged.
func (s *Synchronizer) saveMirror(ctx context.Context, kind mirror.Kind, collection interface{}) {
	if err := s.mirror.Save(ctx, kind, collection); err != nil {
		s.logger.Warn("mirror write failed", zap.String("kind", string(kind)), zap.Error(err))
	}
}

// asyncPush fires the remote write without blocking the caller. Failures are
// logged and swallowed: the local copy is already durable in the mirror, and
// there is no retry queue, so the store can drift from the remote while
// pushes keep failing. That tradeoff is inherited from the original client.
func (s *Synchronizer) asyncPush(action string, fn func(ctx context.Context) error) {
	s.pushes.Add(1)
	go func() {
		defer s.pushes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.pushTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.logger.Warn("push failed, keeping local copy",
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}()
}
