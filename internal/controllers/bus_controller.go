package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_tracker/internal/services"
)

// BusController exposes the registry over HTTP. Mutations sit behind the
// admin role; reads are open.
type BusController struct {
	registry *services.Registry
}

func NewBusController(registry *services.Registry) *BusController {
	return &BusController{registry: registry}
}

// Register creates a new bus, active by default.
func (b *BusController) Register(c *gin.Context) {
	var input struct {
		BusID string `json:"bus_id" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bus input: " + err.Error()})
		return
	}

	bus, err := b.registry.Register(c.Request.Context(), input.BusID, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "bus_id and name must be non-blank"})
		case errors.Is(err, services.ErrDuplicateBus):
			c.JSON(http.StatusConflict, gin.H{"error": "bus already registered"})
		default:
			internalError(c, "could not register bus", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"bus": bus})
}

// Get returns a single bus, active or not.
func (b *BusController) Get(c *gin.Context) {
	bus, err := b.registry.Get(c.Request.Context(), c.Param("bus_id"))
	if err != nil {
		if errors.Is(err, services.ErrBusNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
			return
		}
		internalError(c, "could not fetch bus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bus": bus})
}

// Deactivate permanently takes a bus out of service. There is no matching
// activation endpoint.
func (b *BusController) Deactivate(c *gin.Context) {
	busID := c.Param("bus_id")
	if err := b.registry.Deactivate(c.Request.Context(), busID); err != nil {
		if errors.Is(err, services.ErrBusNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
			return
		}
		internalError(c, "could not deactivate bus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bus deactivated", "bus_id": busID})
}
