package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"bus_tracker/internal/models"
)

// LocationRepository is the GORM-backed services.LocationStore. Records are
// append-only; no update or delete path exists.
type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) AppendLocation(ctx context.Context, rec *models.LocationRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *LocationRepository) LatestLocation(ctx context.Context, busID string) (*models.LocationRecord, error) {
	var rec models.LocationRecord
	err := r.db.WithContext(ctx).
		Where("bus_id = ?", busID).
		Order("recorded_at DESC").
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *LocationRepository) ListLocations(ctx context.Context, busID string) ([]models.LocationRecord, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if busID != "" {
		q = q.Where("bus_id = ?", busID)
	}

	var recs []models.LocationRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
