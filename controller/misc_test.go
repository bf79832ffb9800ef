package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelforge/reel-studio/common/config"
)

func TestGetStatus(t *testing.T) {
	oldFal, oldReplicate := config.FalKey, config.ReplicateAPIToken
	config.FalKey = "fal_secret"
	config.ReplicateAPIToken = ""
	defer func() {
		config.FalKey, config.ReplicateAPIToken = oldFal, oldReplicate
	}()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/status", GetStatus)

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Version   string `json:"version"`
			Providers struct {
				Fal       bool `json:"fal"`
				Replicate bool `json:"replicate"`
			} `json:"providers"`
			R2Enabled bool `json:"r2_enabled"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.NotEmpty(t, payload.Data.Version)
	assert.True(t, payload.Data.Providers.Fal)
	assert.False(t, payload.Data.Providers.Replicate)
	assert.False(t, payload.Data.R2Enabled)
}
