package fal

// GenerationRequest is the fal wire shape. Asset data URIs go in
// image_url/video_url; fal accepts data URIs in place of hosted URLs.
type GenerationRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Duration       float64 `json:"duration"`
	GuidanceScale  float64 `json:"guidance_scale"`
	AspectRatio    string  `json:"aspect_ratio"`
	ImageURL       string  `json:"image_url,omitempty"`
	VideoURL       string  `json:"video_url,omitempty"`
}

type File struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	FileName    string `json:"file_name,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
}

type GenerationResponse struct {
	Video   File  `json:"video"`
	Preview *File `json:"preview,omitempty"`
}

type ErrorResponse struct {
	Detail any `json:"detail"`
}
