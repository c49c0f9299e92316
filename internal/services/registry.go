package services

import (
	"context"
	"strings"

	"bus_tracker/internal/models"
)

// BusStore is the storage surface the registry and location services need.
// The GORM implementation lives in internal/repository; tests substitute an
// in-memory fake.
type BusStore interface {
	// CreateBus persists a new bus. Must be atomic create-if-absent:
	// returns ErrDuplicateBus when the bus_id already exists, without a
	// prior read.
	CreateBus(ctx context.Context, bus *models.Bus) error
	// GetBus returns ErrBusNotFound for an unknown bus_id.
	GetBus(ctx context.Context, busID string) (models.Bus, error)
	// DeactivateBus clears the active flag. Returns ErrBusNotFound for an
	// unknown bus_id.
	DeactivateBus(ctx context.Context, busID string) error
	// ListActiveBuses returns active buses with their location sequences
	// loaded, in registration order.
	ListActiveBuses(ctx context.Context) ([]models.Bus, error)
}

// Registry owns bus identity and active-state.
type Registry struct {
	buses BusStore
}

func NewRegistry(buses BusStore) *Registry {
	return &Registry{buses: buses}
}

// Register creates a new bus, active by default. Duplicate detection is left
// to the store's unique index so two concurrent registrations cannot both
// win.
func (s *Registry) Register(ctx context.Context, busID, name string) (models.Bus, error) {
	busID = strings.TrimSpace(busID)
	name = strings.TrimSpace(name)
	if busID == "" || name == "" {
		return models.Bus{}, ErrInvalidArgument
	}

	bus := models.Bus{
		BusID:  busID,
		Name:   name,
		Active: true,
	}
	if err := s.buses.CreateBus(ctx, &bus); err != nil {
		return models.Bus{}, err
	}
	return bus, nil
}

// Deactivate marks a bus inactive. There is no reactivation path.
func (s *Registry) Deactivate(ctx context.Context, busID string) error {
	return s.buses.DeactivateBus(ctx, busID)
}

// Get looks up a bus by its external id.
func (s *Registry) Get(ctx context.Context, busID string) (models.Bus, error) {
	return s.buses.GetBus(ctx, busID)
}
