package controller

import (
	"context"

	"github.com/reelforge/reel-studio/common/logger"
	"github.com/reelforge/reel-studio/common/storage"
	"github.com/reelforge/reel-studio/relay/channel"
	"github.com/reelforge/reel-studio/relay/channel/mock"
	"github.com/reelforge/reel-studio/relay/model"
)

// Router tries providers in a fixed priority order and falls back to the
// mock catalog. Constructed once at process start from the environment
// config; it holds no mutable state.
type Router struct {
	adaptors []channel.Adaptor
}

func NewRouter(adaptors ...channel.Adaptor) *Router {
	return &Router{adaptors: adaptors}
}

// HasProvider reports whether at least one provider credential is configured.
func (r *Router) HasProvider() bool {
	for _, adaptor := range r.adaptors {
		if adaptor.Enabled() {
			return true
		}
	}
	return false
}

// Generate resolves the request into a result. It never fails: when no
// provider is configured or every attempt fails, the mock catalog answers.
func (r *Router) Generate(ctx context.Context, request *model.GenerationRequest, jobID string) *model.GenerationResult {
	if r.HasProvider() {
		if output := r.attemptProviders(ctx, request); output != nil {
			videoURL := storage.RehostURL(ctx, output.VideoURL, "videos")
			posterURL := storage.RehostURL(ctx, output.PosterURL, "posters")
			return model.NewResult(jobID, request, videoURL, posterURL, model.StatusCompleted)
		}
	}

	entry := mock.Catalog(request.Mode)
	return model.NewResult(jobID, request, entry.VideoURL, entry.PosterURL, model.StatusMock)
}

// attemptProviders gives each enabled provider exactly one attempt, in order.
// A failure is logged and swallowed so the next provider (or the mock
// fallback) can proceed; nil means every attempt came up empty.
func (r *Router) attemptProviders(ctx context.Context, request *model.GenerationRequest) *channel.VideoOutput {
	for _, adaptor := range r.adaptors {
		if !adaptor.Enabled() {
			continue
		}
		output, err := adaptor.Generate(ctx, request)
		if err != nil {
			logger.Warnf(ctx, "provider %s produced no result: %s", adaptor.Name(), err.Error())
			continue
		}
		if output == nil || output.VideoURL == "" {
			logger.Warnf(ctx, "provider %s returned an empty video url", adaptor.Name())
			continue
		}
		logger.Infof(ctx, "provider %s completed %s generation", adaptor.Name(), request.Mode)
		return output
	}
	return nil
}
