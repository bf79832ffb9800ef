package channel

import (
	"context"

	"github.com/reelforge/reel-studio/relay/model"
)

// VideoOutput is what a provider attempt yields on success. PosterURL may be
// empty; VideoURL never is (an empty URL is treated as a failed attempt).
type VideoOutput struct {
	VideoURL  string
	PosterURL string
}

// Adaptor converts a normalized request into one provider-specific HTTP call.
// Implementations make exactly one attempt: no retries, no polling.
type Adaptor interface {
	Name() string
	Enabled() bool
	Generate(ctx context.Context, request *model.GenerationRequest) (*VideoOutput, error)
}
