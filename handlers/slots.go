package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lawflow/config"
	"lawflow/models"
	"lawflow/services/availability"
	"lawflow/services/scheduling"
	"lawflow/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SlotHandler serves the read-only bookable-slot listings.
type SlotHandler struct {
	Engine   scheduling.SchedulingEngine
	Profiles availability.ProfileService
	Cache    *redis.Client
}

// NewSlotHandler creates a SlotHandler.
func NewSlotHandler(engine scheduling.SchedulingEngine, profiles availability.ProfileService, cache *redis.Client) *SlotHandler {
	return &SlotHandler{Engine: engine, Profiles: profiles, Cache: cache}
}

// ListSlots handles GET /api/availability/:profileId/slots?from=&to=.
func (h *SlotHandler) ListSlots(c *gin.Context) {
	h.listSlots(c, c.Param("profileId"))
}

// ListSlotsBySlug handles GET /api/public/:slug/slots?from=&to=.
func (h *SlotHandler) ListSlotsBySlug(c *gin.Context) {
	profile, err := h.Profiles.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.listSlots(c, profile.ID)
}

func (h *SlotHandler) listSlots(c *gin.Context, profileID string) {
	from, to := dateRange(c)

	ctx := c.Request.Context()
	ver := utils.SlotCacheVersion(ctx, h.Cache, profileID)
	key := utils.SlotCacheKey(profileID, ver, from, to)

	if cached, err := h.Cache.Get(ctx, key).Result(); err == nil {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	slots, err := h.Engine.ListSlots(ctx, profileID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}

	body, err := json.Marshal(gin.H{"slots": slots})
	if err != nil {
		respondError(c, err)
		return
	}

	ttl := time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second
	if ttl > 0 {
		if err := h.Cache.Set(ctx, key, body, ttl).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache slot listing", zap.Error(err))
		}
	}
	c.Data(http.StatusOK, "application/json", body)
}

// dateRange reads from/to query params, defaulting to a two-week window.
func dateRange(c *gin.Context) (string, string) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		from = time.Now().UTC().Format("2006-01-02")
	}
	if to == "" {
		if parsed, err := time.Parse("2006-01-02", from); err == nil {
			to = parsed.AddDate(0, 0, 13).Format("2006-01-02")
		} else {
			to = from
		}
	}
	return from, to
}

// invalidateSlots orphans every cached listing for a profile after a write.
func invalidateSlots(ctx context.Context, cache *redis.Client, profileID string) {
	if cache != nil {
		utils.BumpSlotCacheVersion(ctx, cache, profileID)
	}
}
