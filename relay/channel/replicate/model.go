package replicate

import "encoding/json"

// CreatePredictionRequest asks for a synchronous prediction: Sync plus the
// Prefer: wait header keep the call inside one HTTP round trip.
type CreatePredictionRequest struct {
	Model string          `json:"model"`
	Input PredictionInput `json:"input"`
	Sync  bool            `json:"sync"`
}

type PredictionInput struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Duration       float64 `json:"duration"`
	GuidanceScale  float64 `json:"guidance_scale"`
	AspectRatio    string  `json:"aspect_ratio"`
	StartImage     string  `json:"start_image,omitempty"`
	ReferenceVideo string  `json:"reference_video,omitempty"`
}

// PredictionResponse leaves Output raw: depending on the model it is an
// object with video/poster fields, an array of URL strings, or a bare string.
type PredictionResponse struct {
	ID     string          `json:"id"`
	Model  string          `json:"model"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  any             `json:"error"`
}

type outputObject struct {
	Video  string `json:"video"`
	Poster string `json:"poster"`
}
