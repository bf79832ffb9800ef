package router

import (
	"embed"

	"github.com/gin-gonic/gin"
	relay "github.com/reelforge/reel-studio/relay/controller"
)

func SetRouter(router *gin.Engine, buildFS embed.FS, relayRouter *relay.Router) {
	SetApiRouter(router, relayRouter)
	SetWebRouter(router, buildFS)
}
