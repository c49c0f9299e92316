package services

import "errors"

// Sentinel errors returned by the registry, ingestion and query services.
// Controllers translate these to HTTP statuses; anything else is a 500.
var (
	// ErrInvalidArgument covers malformed or missing fields.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidBus is returned when a location operation references a bus
	// that is unknown or inactive. The two cases are deliberately one error
	// class: an inactive bus may not report, and callers are not told which
	// condition they hit.
	ErrInvalidBus = errors.New("unknown or inactive bus")

	// ErrOutOfRange is returned for coordinates outside the valid
	// latitude/longitude bounds.
	ErrOutOfRange = errors.New("coordinates out of range")

	// ErrDuplicateBus is returned when registering a bus_id that already
	// exists.
	ErrDuplicateBus = errors.New("bus already registered")

	// ErrBusNotFound is returned by registry reads and updates for an
	// unknown bus_id. Distinct from ErrInvalidBus: the registry does tell
	// callers the bus does not exist.
	ErrBusNotFound = errors.New("bus not found")
)
