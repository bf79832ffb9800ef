package replicate

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
	Token   string
	BaseURL string
	Model   string
	Client  *http.Client
}

func NewAdaptor(token, baseURL, modelName string) *Adaptor {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if modelName == "" {
		modelName = DefaultVideoModel
	}
	return &Adaptor{
		Token:   token,
		BaseURL: baseURL,
		Model:   modelName,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (a *Adaptor) Name() string {
	return "replicate"
}

func (a *Adaptor) Enabled() bool {
	return a.Token != ""
}

func (a *Adaptor) ConvertRequest(request *model.GenerationRequest) *CreatePredictionRequest {
	prediction := &CreatePredictionRequest{
		Model: a.Model,
		Sync:  true,
		Input: PredictionInput{
			Prompt:         request.Prompt,
			NegativePrompt: request.NegativePrompt,
			Duration:       request.Duration,
			GuidanceScale:  request.Guidance,
			AspectRatio:    request.AspectRatio,
		},
	}
	if request.ImageAsset != nil {
		prediction.Input.StartImage = request.ImageAsset.DataURI
	}
	if request.ReferenceAsset != nil {
		prediction.Input.ReferenceVideo = request.ReferenceAsset.DataURI
	}
	return prediction
}

func (a *Adaptor) Generate(ctx context.Context, request *model.GenerationRequest) (*channel.VideoOutput, error) {
	body, err := json.Marshal(a.ConvertRequest(request))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prediction request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+predictionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.Token)
	req.Header.Set("Prefer", "wait")

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("replicate request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("replicate returned status %d: %s", resp.StatusCode, string(excerpt))
	}

	var prediction PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction response: %v", err)
	}
	if prediction.Error != nil {
		return nil, fmt.Errorf("prediction failed: %v", prediction.Error)
	}

	videoURL, posterURL, err := resolveOutput(prediction.Output)
	if err != nil {
		return nil, err
	}
	return &channel.VideoOutput{VideoURL: videoURL, PosterURL: posterURL}, nil
}

// resolveOutput extracts the video URL from the prediction output, which is
// an object with video/poster fields, an array whose first element is the
// video URL, or a bare URL string. A pending async payload has no output and
// falls through here like any other failure.
func resolveOutput(raw json.RawMessage) (videoURL string, posterURL string, err error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", "", errors.New("prediction output is empty")
	}

	var object outputObject
	if err := json.Unmarshal(raw, &object); err == nil && object.Video != "" {
		return object.Video, object.Poster, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 && list[0] != "" {
		return list[0], "", nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return single, "", nil
	}

	return "", "", fmt.Errorf("unexpected prediction output shape: %s", excerpt(raw))
}

func excerpt(raw json.RawMessage) string {
	if len(raw) > 128 {
		return string(raw[:128]) + "..."
	}
	return string(raw)
}
