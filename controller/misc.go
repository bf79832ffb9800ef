package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelforge/reel-studio/common"
	"github.com/reelforge/reel-studio/common/config"
	"github.com/reelforge/reel-studio/common/storage"
)

func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":     common.Version,
			"start_time":  common.StartTime,
			"system_name": config.SystemName,
			"providers": gin.H{
				"fal":       config.FalEnabled(),
				"replicate": config.ReplicateEnabled(),
			},
			"r2_enabled": storage.Enabled(),
		},
	})
}
