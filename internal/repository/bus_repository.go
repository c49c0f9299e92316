package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"bus_tracker/internal/models"
	"bus_tracker/internal/services"
)

// BusRepository is the GORM-backed services.BusStore.
type BusRepository struct {
	db *gorm.DB
}

func NewBusRepository(db *gorm.DB) *BusRepository {
	return &BusRepository{db: db}
}

// CreateBus inserts the bus and relies on the unique index on bus_id for
// duplicate detection, so concurrent registrations of the same id resolve to
// exactly one winner.
func (r *BusRepository) CreateBus(ctx context.Context, bus *models.Bus) error {
	if err := r.db.WithContext(ctx).Create(bus).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return services.ErrDuplicateBus
		}
		return err
	}
	return nil
}

func (r *BusRepository) GetBus(ctx context.Context, busID string) (models.Bus, error) {
	var bus models.Bus
	err := r.db.WithContext(ctx).Where("bus_id = ?", busID).First(&bus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Bus{}, services.ErrBusNotFound
		}
		return models.Bus{}, err
	}
	return bus, nil
}

func (r *BusRepository) DeactivateBus(ctx context.Context, busID string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Bus{}).
		Where("bus_id = ?", busID).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return services.ErrBusNotFound
	}
	return nil
}

func (r *BusRepository) ListActiveBuses(ctx context.Context) ([]models.Bus, error) {
	var buses []models.Bus
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Preload("Locations", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Order("id ASC").
		Find(&buses).Error
	if err != nil {
		return nil, err
	}
	return buses, nil
}

// isUniqueViolation checks for Postgres error 23505 (unique_violation).
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
