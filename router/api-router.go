package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/reelforge/reel-studio/controller"
	"github.com/reelforge/reel-studio/middleware"
	relay "github.com/reelforge/reel-studio/relay/controller"
)

func SetApiRouter(router *gin.Engine, relayRouter *relay.Router) {
	router.Use(middleware.CORS())
	apiRouter := router.Group("/api")
	apiRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		apiRouter.GET("/status", controller.GetStatus)
		apiRouter.POST("/generate", controller.Generate(relayRouter))
	}
}
