package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"bus_tracker/internal/models"
)

// LocationStore is the append/read surface for location records.
type LocationStore interface {
	// AppendLocation inserts a new record and fills in its generated id.
	AppendLocation(ctx context.Context, rec *models.LocationRecord) error
	// LatestLocation returns the most recent record by recorded_at, or nil
	// when the bus has no records yet.
	LatestLocation(ctx context.Context, busID string) (*models.LocationRecord, error)
	// ListLocations returns records in insertion order. An empty busID
	// means all records across all buses.
	ListLocations(ctx context.Context, busID string) ([]models.LocationRecord, error)
}

// Ingestion validates and persists incoming position reports.
type Ingestion struct {
	buses     BusStore
	locations LocationStore
	tz        *time.Location
	now       func() time.Time
}

func NewIngestion(buses BusStore, locations LocationStore, tz *time.Location) *Ingestion {
	if tz == nil {
		tz = time.UTC
	}
	return &Ingestion{
		buses:     buses,
		locations: locations,
		tz:        tz,
		now:       time.Now,
	}
}

// Ingest appends one location record for a registered, active bus. The append
// is the only side effect; on any error nothing is written.
func (s *Ingestion) Ingest(ctx context.Context, busID string, lat, lon float64, recordedAt string) (models.LocationRecord, error) {
	busID = strings.TrimSpace(busID)
	if busID == "" {
		return models.LocationRecord{}, fmt.Errorf("%w: bus_id is required", ErrInvalidArgument)
	}

	bus, err := s.buses.GetBus(ctx, busID)
	if err != nil {
		if errors.Is(err, ErrBusNotFound) {
			return models.LocationRecord{}, ErrInvalidBus
		}
		return models.LocationRecord{}, err
	}
	if !bus.Active {
		return models.LocationRecord{}, ErrInvalidBus
	}

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return models.LocationRecord{}, fmt.Errorf("%w: coordinates must be finite numbers", ErrInvalidArgument)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.LocationRecord{}, fmt.Errorf("%w: latitude %v, longitude %v", ErrOutOfRange, lat, lon)
	}

	ts, err := s.resolveTimestamp(recordedAt)
	if err != nil {
		return models.LocationRecord{}, err
	}

	rec := models.LocationRecord{
		BusID:      busID,
		Latitude:   lat,
		Longitude:  lon,
		RecordedAt: ts,
	}
	if err := s.locations.AppendLocation(ctx, &rec); err != nil {
		return models.LocationRecord{}, err
	}
	return rec, nil
}

// resolveTimestamp defaults an absent recorded_at to the current server time
// in the configured timezone, and normalizes caller-supplied values to
// RFC3339 so the stored strings stay sortable.
func (s *Ingestion) resolveTimestamp(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.now().In(s.tz).Format(time.RFC3339), nil
	}

	// Devices in the field send timestamps both with and without a zone
	// suffix; a zone-less value is taken to be in the service timezone.
	if hasZoneSuffix(raw) {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return "", fmt.Errorf("%w: invalid recorded_at %q", ErrInvalidArgument, raw)
		}
		return t.Format(time.RFC3339), nil
	}

	t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", raw, s.tz)
	if err != nil {
		return "", fmt.Errorf("%w: invalid recorded_at %q", ErrInvalidArgument, raw)
	}
	return t.Format(time.RFC3339), nil
}

func hasZoneSuffix(ts string) bool {
	if strings.HasSuffix(ts, "Z") {
		return true
	}
	if len(ts) < 6 {
		return false
	}
	return strings.ContainsAny(ts[len(ts)-6:], "+-")
}
