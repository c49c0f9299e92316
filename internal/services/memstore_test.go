package services

import (
	"context"
	"sync"

	"bus_tracker/internal/models"
)

// memStore is an in-memory BusStore + LocationStore standing in for the GORM
// repositories.
type memStore struct {
	mu     sync.Mutex
	buses  map[string]*models.Bus
	order  []string
	locs   []models.LocationRecord
	nextID uint
}

func newMemStore() *memStore {
	return &memStore{buses: make(map[string]*models.Bus)}
}

func (m *memStore) CreateBus(_ context.Context, bus *models.Bus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.buses[bus.BusID]; exists {
		return ErrDuplicateBus
	}
	m.nextID++
	bus.ID = m.nextID
	cp := *bus
	m.buses[bus.BusID] = &cp
	m.order = append(m.order, bus.BusID)
	return nil
}

func (m *memStore) GetBus(_ context.Context, busID string) (models.Bus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bus, ok := m.buses[busID]
	if !ok {
		return models.Bus{}, ErrBusNotFound
	}
	return *bus, nil
}

func (m *memStore) DeactivateBus(_ context.Context, busID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	bus, ok := m.buses[busID]
	if !ok {
		return ErrBusNotFound
	}
	bus.Active = false
	return nil
}

func (m *memStore) ListActiveBuses(_ context.Context) ([]models.Bus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Bus
	for _, id := range m.order {
		bus := m.buses[id]
		if !bus.Active {
			continue
		}
		cp := *bus
		for _, rec := range m.locs {
			if rec.BusID == id {
				cp.Locations = append(cp.Locations, rec)
			}
		}
		out = append(out, cp)
	}
	return out, nil
}

func (m *memStore) AppendLocation(_ context.Context, rec *models.LocationRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	rec.ID = m.nextID
	m.locs = append(m.locs, *rec)
	return nil
}

func (m *memStore) LatestLocation(_ context.Context, busID string) (*models.LocationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var latest *models.LocationRecord
	for i := range m.locs {
		rec := m.locs[i]
		if rec.BusID != busID {
			continue
		}
		if latest == nil || rec.RecordedAt > latest.RecordedAt {
			cp := rec
			latest = &cp
		}
	}
	return latest, nil
}

func (m *memStore) ListLocations(_ context.Context, busID string) ([]models.LocationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.LocationRecord
	for _, rec := range m.locs {
		if busID == "" || rec.BusID == busID {
			out = append(out, rec)
		}
	}
	return out, nil
}
