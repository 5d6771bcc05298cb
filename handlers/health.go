package handlers

import (
	"context"
	"net/http"
	"time"

	"lawflow/database"
	"lawflow/utils"

	"github.com/gin-gonic/gin"
)

// Health reports reachability of the backing stores.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoOK := database.MongoClient.Ping(ctx, nil) == nil
	redisOK := utils.GetCacheClient().Ping(ctx).Err() == nil

	status := http.StatusOK
	if !mongoOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"mongo":     mongoOK,
		"redis":     redisOK,
		"checkedAt": time.Now().UTC(),
	})
}
