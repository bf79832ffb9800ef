package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/reelforge/reel-studio/common/helper"
	"github.com/reelforge/reel-studio/common/logger"
)

func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		// 用户传了 X-Request-Id 以用户为准，没传用系统生成的
		id := c.GetHeader(logger.RequestIdKey)
		if id == "" {
			id = helper.GenRequestID()
		}
		c.Set(logger.RequestIdKey, id)
		ctx := context.WithValue(c.Request.Context(), logger.RequestIdKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(logger.RequestIdKey, id)
		c.Next()
	}
}
