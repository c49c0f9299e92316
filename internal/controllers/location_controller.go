package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bus_tracker/internal/services"
)

// LocationController handles position reports from devices and the dashboard
// read paths.
type LocationController struct {
	ingestion *services.Ingestion
	query     *services.Query
	hub       *LocationHub
	db        *gorm.DB // health probe only
}

func NewLocationController(ingestion *services.Ingestion, query *services.Query, hub *LocationHub, db *gorm.DB) *LocationController {
	return &LocationController{ingestion: ingestion, query: query, hub: hub, db: db}
}

type ingestInput struct {
	BusID      string   `json:"bus_id" binding:"required"`
	Latitude   *float64 `json:"latitude" binding:"required"`
	Longitude  *float64 `json:"longitude" binding:"required"`
	RecordedAt string   `json:"recorded_at"`
}

// Ingest appends one location record for an active bus.
func (l *LocationController) Ingest(c *gin.Context) {
	var input ingestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location input: " + err.Error()})
		return
	}

	rec, err := l.ingestion.Ingest(c.Request.Context(), input.BusID, *input.Latitude, *input.Longitude, input.RecordedAt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidBus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or inactive bus"})
		case errors.Is(err, services.ErrOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, "could not store location", err)
		}
		return
	}

	if l.hub != nil {
		l.hub.Broadcast(rec)
	}

	c.JSON(http.StatusCreated, gin.H{
		"location_id": rec.ID,
		"location":    rec,
	})
}

// Latest returns the most recent report for a bus, or a null sentinel when
// the bus has not reported yet.
func (l *LocationController) Latest(c *gin.Context) {
	busID := c.Param("bus_id")
	rec, err := l.query.Latest(c.Request.Context(), busID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or inactive bus"})
			return
		}
		internalError(c, "could not fetch latest location", err)
		return
	}

	if rec == nil {
		c.JSON(http.StatusOK, gin.H{"bus_id": busID, "location": nil, "message": "no data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bus_id": busID, "location": rec})
}

// List returns records for one bus (?bus_id=) or across the whole fleet.
func (l *LocationController) List(c *gin.Context) {
	recs, err := l.query.List(c.Request.Context(), c.Query("bus_id"))
	if err != nil {
		internalError(c, "could not list locations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recs})
}

// ListWithBuses joins active buses with their location sequences for the
// dashboard listing.
func (l *LocationController) ListWithBuses(c *gin.Context) {
	out, err := l.query.ListWithBuses(c.Request.Context())
	if err != nil {
		internalError(c, "could not list bus locations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Track renders a bus's history as a GeoJSON LineString.
func (l *LocationController) Track(c *gin.Context) {
	body, err := l.query.TrackGeoJSON(c.Request.Context(), c.Param("bus_id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidBus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown or inactive bus"})
			return
		}
		internalError(c, "could not build track", err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}

// Health pings the database, mirroring the old /check-db probe.
func (l *LocationController) Health(c *gin.Context) {
	sqlDB, err := l.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "disconnected", "message": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "connected"})
}

// internalError logs the real failure and hands the client a generic 500.
func internalError(c *gin.Context, msg string, err error) {
	logrus.WithError(err).Error(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
