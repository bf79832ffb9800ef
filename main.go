package main

import (
	"embed"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/reelforge/reel-studio/common"
	"github.com/reelforge/reel-studio/common/config"
	"github.com/reelforge/reel-studio/common/logger"
	"github.com/reelforge/reel-studio/middleware"
	"github.com/reelforge/reel-studio/relay/channel/fal"
	"github.com/reelforge/reel-studio/relay/channel/replicate"
	relay "github.com/reelforge/reel-studio/relay/controller"
	"github.com/reelforge/reel-studio/router"
)

//go:embed web/build/*
var buildFS embed.FS

func main() {
	// .env is optional; plain environment variables work the same
	_ = godotenv.Load()
	common.Init()
	if err := config.Load(); err != nil {
		logger.FatalLog("failed to load config: " + err.Error())
	}
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("Reel Studio %s started", common.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}

	if config.FalEnabled() {
		logger.SysLog("fal provider enabled")
	}
	if config.ReplicateEnabled() {
		logger.SysLog("replicate provider enabled, model " + config.ReplicateVideoModel)
	}
	if !config.AnyProviderEnabled() {
		logger.SysLog("no provider credential configured, serving mock catalog only")
	}
	if config.R2Enabled() {
		logger.SysLog("R2 re-hosting enabled, bucket " + config.R2Bucket)
	}

	// Fixed priority order: fal first, replicate second, mock always last.
	relayRouter := relay.NewRouter(
		fal.NewAdaptor(config.FalKey, config.FalBaseURL),
		replicate.NewAdaptor(config.ReplicateAPIToken, config.ReplicateBaseURL, config.ReplicateVideoModel),
	)

	server := gin.New()
	server.Use(middleware.PanicRecover())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)

	router.SetRouter(server, buildFS, relayRouter)

	port := os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	if err := server.Run(":" + port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
