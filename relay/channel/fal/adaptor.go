package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reelforge/reel-studio/relay/channel"
	"github.com/reelforge/reel-studio/relay/model"
)

type Adaptor struct {
	Key     string
	BaseURL string
	Client  *http.Client
}

func NewAdaptor(key, baseURL string) *Adaptor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adaptor{
		Key:     key,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (a *Adaptor) Name() string {
	return "fal"
}

func (a *Adaptor) Enabled() bool {
	return a.Key != ""
}

// ConvertRequest maps the normalized request onto the fal wire shape.
func (a *Adaptor) ConvertRequest(request *model.GenerationRequest) *GenerationRequest {
	falRequest := &GenerationRequest{
		Prompt:         request.Prompt,
		NegativePrompt: request.NegativePrompt,
		Duration:       request.Duration,
		GuidanceScale:  request.Guidance,
		AspectRatio:    request.AspectRatio,
	}
	if request.ImageAsset != nil {
		falRequest.ImageURL = request.ImageAsset.DataURI
	}
	if request.ReferenceAsset != nil {
		falRequest.VideoURL = request.ReferenceAsset.DataURI
	}
	return falRequest
}

func (a *Adaptor) Generate(ctx context.Context, request *model.GenerationRequest) (*channel.VideoOutput, error) {
	endpoint, ok := endpointByMode[request.Mode]
	if !ok {
		return nil, fmt.Errorf("no fal endpoint for mode %q", request.Mode)
	}

	body, err := json.Marshal(a.ConvertRequest(request))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create fal request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+a.Key)

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fal request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fal returned status %d: %s", resp.StatusCode, string(excerpt))
	}

	var falResponse GenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&falResponse); err != nil {
		return nil, fmt.Errorf("failed to decode fal response: %v", err)
	}
	if falResponse.Video.URL == "" {
		return nil, errors.New("fal response missing video url")
	}

	output := &channel.VideoOutput{VideoURL: falResponse.Video.URL}
	if falResponse.Preview != nil {
		output.PosterURL = falResponse.Preview.URL
	}
	return output, nil
}
