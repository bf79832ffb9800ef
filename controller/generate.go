package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reelforge/reel-studio/common/asset"
	"github.com/reelforge/reel-studio/common/helper"
	"github.com/reelforge/reel-studio/common/logger"
	relay "github.com/reelforge/reel-studio/relay/controller"
	"github.com/reelforge/reel-studio/relay/model"
	"github.com/reelforge/reel-studio/relay/validator"
)

// Generate handles POST /api/generate: normalize the multipart form, encode
// the mode's upload, route to a provider (or the mock catalog) and answer
// with the result JSON. The whole request is synchronous; the job id is only
// a client-side handle.
func Generate(router *relay.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var form model.GenerateForm
		if err := c.ShouldBind(&form); err != nil {
			abortWithError(c, model.ErrorWrapper(errors.New("mode is required"), "invalid_request", http.StatusBadRequest))
			return
		}

		request, err := validator.Normalize(&form)
		if err != nil {
			abortWithError(c, model.ErrorWrapper(err, "invalid_request", http.StatusBadRequest))
			return
		}

		if relayErr := attachUpload(c, request); relayErr != nil {
			abortWithError(c, relayErr)
			return
		}

		jobID := helper.GenJobID()
		result := router.Generate(ctx, request, jobID)
		logger.Infof(ctx, "generation %s resolved with status %s", jobID, result.Status)
		c.JSON(http.StatusOK, result)
	}
}

// attachUpload enforces the mode/upload invariant: image mode needs an image
// file, reference mode needs a reference clip, text mode takes nothing.
func attachUpload(c *gin.Context, request *model.GenerationRequest) *model.ErrorWithStatusCode {
	switch request.Mode {
	case model.ModeImage:
		fh, err := c.FormFile("image")
		if err != nil {
			return model.ErrorWrapper(errors.New("image mode requires an image upload"), "missing_upload", http.StatusBadRequest)
		}
		encoded, err := asset.EncodeUpload(fh, asset.MaxImageBytes, "image")
		if err != nil {
			return model.ErrorWrapper(err, "upload_rejected", http.StatusBadRequest)
		}
		request.ImageAsset = encoded
	case model.ModeReference:
		fh, err := c.FormFile("referenceVideo")
		if err != nil {
			return model.ErrorWrapper(errors.New("reference mode requires a referenceVideo upload"), "missing_upload", http.StatusBadRequest)
		}
		encoded, err := asset.EncodeUpload(fh, asset.MaxReferenceBytes, "reference video")
		if err != nil {
			return model.ErrorWrapper(err, "upload_rejected", http.StatusBadRequest)
		}
		request.ReferenceAsset = encoded
	}
	return nil
}

func abortWithError(c *gin.Context, relayErr *model.ErrorWithStatusCode) {
	logger.Warnf(c.Request.Context(), "request rejected (%s): %s", relayErr.Code, relayErr.Message)
	c.JSON(relayErr.StatusCode, gin.H{
		"error": relayErr.Message,
	})
	c.Abort()
}
