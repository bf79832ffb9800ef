package fal

import "github.com/reelforge/reel-studio/relay/model"

const DefaultBaseURL = "https://fal.run"

// One endpoint family, path chosen by mode.
var endpointByMode = map[string]string{
	model.ModeText:      "/fal-ai/kling-video/v2/master/text-to-video",
	model.ModeImage:     "/fal-ai/kling-video/v2/master/image-to-video",
	model.ModeReference: "/fal-ai/kling-video/v2/master/video-to-video",
}
