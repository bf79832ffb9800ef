package model

import (
	"github.com/reelforge/reel-studio/common/asset"
)

// Generation modes. Which upload a request needs depends on the mode:
// text needs none, image needs an image, reference needs a reference clip.
const (
	ModeText      = "text"
	ModeImage     = "image"
	ModeReference = "reference"
)

const (
	StatusCompleted = "completed"
	StatusMock      = "mock"
)

const (
	DefaultDuration = 6.0
	MinDuration     = 3.0
	MaxDuration     = 12.0

	DefaultGuidance = 7.0
	MinGuidance     = 1.0
	MaxGuidance     = 15.0

	DefaultAspectRatio = "16:9"
)

// GenerateForm is the raw multipart form as the client sends it. Numeric
// fields stay strings here; the validator owns parsing and clamping.
type GenerateForm struct {
	Mode           string `form:"mode" binding:"required"`
	Prompt         string `form:"prompt"`
	NegativePrompt string `form:"negativePrompt"`
	Duration       string `form:"duration"`
	Guidance       string `form:"guidance"`
	AspectRatio    string `form:"aspectRatio"`
}

// GenerationRequest is the normalized request handed to the provider router.
// Invariant: at most one of ImageAsset/ReferenceAsset is set, matching Mode.
type GenerationRequest struct {
	Mode           string  `validate:"required,oneof=text image reference"`
	Prompt         string  `validate:"required_if=Mode text"`
	NegativePrompt string
	Duration       float64 `validate:"min=3,max=12"`
	Guidance       float64 `validate:"min=1,max=15"`
	AspectRatio    string  `validate:"aspect_ratio"`

	ImageAsset     *asset.Encoded
	ReferenceAsset *asset.Encoded
}

// Metadata echoes the clamped/validated values back to the client.
type Metadata struct {
	Duration    float64 `json:"duration"`
	AspectRatio string  `json:"aspectRatio"`
	Guidance    float64 `json:"guidance"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
}

// GenerationResult is created once per request and never mutated; it lives
// only for the duration of the HTTP response.
type GenerationResult struct {
	JobId     string   `json:"jobId"`
	VideoURL  string   `json:"videoUrl"`
	PosterURL string   `json:"posterUrl,omitempty"`
	Mode      string   `json:"mode"`
	Prompt    string   `json:"prompt"`
	Status    string   `json:"status"`
	Metadata  Metadata `json:"metadata"`
}

// NewResult assembles a GenerationResult from the normalized request.
func NewResult(jobID string, request *GenerationRequest, videoURL, posterURL, status string) *GenerationResult {
	metadata := Metadata{
		Duration:    request.Duration,
		AspectRatio: request.AspectRatio,
		Guidance:    request.Guidance,
	}
	if request.ImageAsset != nil {
		metadata.Width = request.ImageAsset.Width
		metadata.Height = request.ImageAsset.Height
	}
	return &GenerationResult{
		JobId:     jobID,
		VideoURL:  videoURL,
		PosterURL: posterURL,
		Mode:      request.Mode,
		Prompt:    request.Prompt,
		Status:    status,
		Metadata:  metadata,
	}
}
