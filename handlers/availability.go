package handlers

import (
	"net/http"

	"lawflow/middleware"
	"lawflow/models"
	"lawflow/services/availability"
	"lawflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AvailabilityHandler serves host-side profile management endpoints.
type AvailabilityHandler struct {
	Svc   availability.ProfileService
	Cache *redis.Client
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.ProfileService, cache *redis.Client) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Cache: cache}
}

// CreateProfile handles POST /api/availability.
func (h *AvailabilityHandler) CreateProfile(c *gin.Context) {
	var profile models.AvailabilityProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), middleware.OwnerID(c), &profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProfile handles GET /api/availability/:profileId.
func (h *AvailabilityHandler) GetProfile(c *gin.Context) {
	profile, err := h.Svc.GetByID(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetPublicProfile handles GET /api/public/:slug.
func (h *AvailabilityHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.Svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil || !profile.IsActive {
		utils.JSONError(c, http.StatusNotFound, "not found", "no active availability page at this address")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProfiles handles GET /api/availability (host's own profiles).
func (h *AvailabilityHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.Svc.ListByOwner(c.Request.Context(), middleware.OwnerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if profiles == nil {
		profiles = []models.AvailabilityProfile{}
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// UpdateProfile handles PUT /api/availability/:profileId.
func (h *AvailabilityHandler) UpdateProfile(c *gin.Context) {
	var profile models.AvailabilityProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	profile.ID = c.Param("profileId")

	updated, err := h.Svc.Update(c.Request.Context(), middleware.OwnerID(c), &profile)
	if err != nil {
		respondError(c, err)
		return
	}

	// New windows, buffers or caps change the slot set immediately.
	invalidateSlots(c.Request.Context(), h.Cache, updated.ID)
	c.JSON(http.StatusOK, updated)
}

// DeleteProfile handles DELETE /api/availability/:profileId.
func (h *AvailabilityHandler) DeleteProfile(c *gin.Context) {
	err := h.Svc.Delete(c.Request.Context(), middleware.OwnerID(c), c.Param("profileId"))
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateSlots(c.Request.Context(), h.Cache, c.Param("profileId"))
	c.Status(http.StatusNoContent)
}
