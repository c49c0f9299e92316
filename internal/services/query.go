package services

import (
	"context"
	"errors"

	geom "github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"bus_tracker/internal/models"
)

// Query reads location data back for dashboards.
type Query struct {
	buses     BusStore
	locations LocationStore
}

func NewQuery(buses BusStore, locations LocationStore) *Query {
	return &Query{buses: buses, locations: locations}
}

// BusWithLocations pairs a bus with its full location sequence for the
// listing view.
type BusWithLocations struct {
	Bus       models.Bus              `json:"bus"`
	Locations []models.LocationRecord `json:"locations"`
}

// Latest returns the most recent record for an active bus, or nil when the
// bus has not reported yet. Unknown and inactive buses fail alike.
func (s *Query) Latest(ctx context.Context, busID string) (*models.LocationRecord, error) {
	if err := s.requireActiveBus(ctx, busID); err != nil {
		return nil, err
	}
	return s.locations.LatestLocation(ctx, busID)
}

// List returns location records in insertion order; with an empty busID it
// spans all buses. No bus lookup happens here, matching the read-everything
// dashboard path.
func (s *Query) List(ctx context.Context, busID string) ([]models.LocationRecord, error) {
	return s.locations.ListLocations(ctx, busID)
}

// ListWithBuses joins active buses with their location sequences.
func (s *Query) ListWithBuses(ctx context.Context) ([]BusWithLocations, error) {
	buses, err := s.buses.ListActiveBuses(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BusWithLocations, 0, len(buses))
	for _, b := range buses {
		locs := b.Locations
		if locs == nil {
			locs = []models.LocationRecord{}
		}
		b.Locations = nil
		out = append(out, BusWithLocations{Bus: b, Locations: locs})
	}
	return out, nil
}

// TrackGeoJSON renders a bus's history as a GeoJSON LineString in insertion
// order. With fewer than two points there is no line; an empty LineString is
// returned rather than an error.
func (s *Query) TrackGeoJSON(ctx context.Context, busID string) ([]byte, error) {
	if err := s.requireActiveBus(ctx, busID); err != nil {
		return nil, err
	}

	recs, err := s.locations.ListLocations(ctx, busID)
	if err != nil {
		return nil, err
	}

	coords := make([]geom.Coord, 0, len(recs))
	for _, r := range recs {
		coords = append(coords, geom.Coord{r.Longitude, r.Latitude})
	}
	if len(coords) < 2 {
		coords = nil
	}

	line := geom.NewLineString(geom.XY)
	if coords != nil {
		if _, err := line.SetCoords(coords); err != nil {
			return nil, err
		}
	}
	return gjson.Marshal(line)
}

func (s *Query) requireActiveBus(ctx context.Context, busID string) error {
	bus, err := s.buses.GetBus(ctx, busID)
	if err != nil {
		if errors.Is(err, ErrBusNotFound) {
			return ErrInvalidBus
		}
		return err
	}
	if !bus.Active {
		return ErrInvalidBus
	}
	return nil
}
