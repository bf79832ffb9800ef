package router

import (
	"embed"
	"net/http"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/reelforge/reel-studio/common"
	"github.com/reelforge/reel-studio/common/logger"
)

// SetWebRouter serves the embedded studio front-end build. Unknown paths fall
// back to index.html (SPA routing); unknown /api paths stay 404.
func SetWebRouter(router *gin.Engine, buildFS embed.FS) {
	indexPage, err := buildFS.ReadFile("web/build/index.html")
	if err != nil {
		logger.SysError("failed to read embedded index.html: " + err.Error())
	}

	router.Use(static.Serve("/", common.EmbedFolder(buildFS, "web/build")))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})
}
