package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/reelforge/reel-studio/common/logger"
)

// PanicRecover is the outermost failure boundary: anything uncaught below it
// becomes a structured 500 instead of a dropped connection.
func PanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.SysError(fmt.Sprintf("panic detected: %v", err))
				logger.SysError(fmt.Sprintf("stacktrace from panic: %s", string(debug.Stack())))
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("internal error: %v", err),
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
