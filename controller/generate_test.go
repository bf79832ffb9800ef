package controller

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reelforge/reel-studio/relay/channel/fal"
	"github.com/reelforge/reel-studio/relay/channel/mock"
	relay "github.com/reelforge/reel-studio/relay/controller"
	"github.com/reelforge/reel-studio/relay/model"
)

func newTestServer(router *relay.Router) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/generate", Generate(router))
	return engine
}

type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, files ...formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, file := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.filename))
		if file.contentType != "" {
			header.Set("Content-Type", file.contentType)
		}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func postGenerate(t *testing.T, engine *gin.Engine, fields map[string]string, files ...formFile) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, files...)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeResult(t *testing.T, recorder *httptest.ResponseRecorder) model.GenerationResult {
	t.Helper()
	var result model.GenerationResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	return result
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload["error"]
}

// 1x1 transparent png, enough for the dimension probe.
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func pngBytes(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)
	return data
}

func TestGenerateTextModeFallsBackToMock(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine, map[string]string{
		"mode":     "text",
		"prompt":   "  a lighthouse at dusk  ",
		"duration": "40",
		"guidance": "0.2",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeResult(t, recorder)
	assert.Equal(t, model.StatusMock, result.Status)
	assert.Equal(t, model.ModeText, result.Mode)
	assert.Equal(t, "a lighthouse at dusk", result.Prompt)
	assert.Equal(t, mock.Catalog(model.ModeText).VideoURL, result.VideoURL)
	assert.NotEmpty(t, result.JobId)
	assert.Equal(t, model.MaxDuration, result.Metadata.Duration)
	assert.Equal(t, model.MinGuidance, result.Metadata.Guidance)
	assert.Equal(t, model.DefaultAspectRatio, result.Metadata.AspectRatio)
}

func TestGenerateJobIdsAreUnique(t *testing.T) {
	engine := newTestServer(relay.NewRouter())
	fields := map[string]string{"mode": "text", "prompt": "same prompt twice"}

	first := decodeResult(t, postGenerate(t, engine, fields))
	second := decodeResult(t, postGenerate(t, engine, fields))
	assert.NotEqual(t, first.JobId, second.JobId)
}

func TestGenerateRejectsMissingMode(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine, map[string]string{"prompt": "no mode"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "mode is required", decodeError(t, recorder))
}

func TestGenerateRejectsUnsupportedMode(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine, map[string]string{"mode": "audio", "prompt": "hum"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, decodeError(t, recorder), "unsupported mode")
}

func TestGenerateRejectsTextWithoutPrompt(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine, map[string]string{"mode": "text", "prompt": "   "})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "prompt is required for text mode", decodeError(t, recorder))
}

func TestGenerateImageModeRequiresUpload(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine, map[string]string{"mode": "image"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "image mode requires an image upload", decodeError(t, recorder))
}

func TestGenerateReferenceModeRequiresUpload(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine, map[string]string{"mode": "reference"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "reference mode requires a referenceVideo upload", decodeError(t, recorder))
}

func TestGenerateImageModeWithUpload(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine,
		map[string]string{"mode": "image", "aspectRatio": "9:16"},
		formFile{field: "image", filename: "frame.png", contentType: "image/png", data: pngBytes(t)},
	)

	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeResult(t, recorder)
	assert.Equal(t, model.StatusMock, result.Status)
	assert.Equal(t, model.ModeImage, result.Mode)
	assert.Equal(t, mock.Catalog(model.ModeImage).VideoURL, result.VideoURL)
	assert.Equal(t, "9:16", result.Metadata.AspectRatio)
	assert.Equal(t, 1, result.Metadata.Width)
	assert.Equal(t, 1, result.Metadata.Height)
}

func TestGenerateReferenceModeWithUpload(t *testing.T) {
	engine := newTestServer(relay.NewRouter())

	recorder := postGenerate(t, engine,
		map[string]string{"mode": "reference"},
		formFile{field: "referenceVideo", filename: "clip.mp4", contentType: "video/mp4", data: []byte("not a real clip")},
	)

	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeResult(t, recorder)
	assert.Equal(t, model.StatusMock, result.Status)
	assert.Equal(t, mock.Catalog(model.ModeReference).VideoURL, result.VideoURL)
}

func TestGenerateCompletedThroughProvider(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"video":{"url":"https://videos.example.com/out.mp4"},"preview":{"url":"https://videos.example.com/out.jpg"}}`))
	}))
	defer upstream.Close()

	engine := newTestServer(relay.NewRouter(fal.NewAdaptor("fal_secret", upstream.URL)))

	recorder := postGenerate(t, engine, map[string]string{"mode": "text", "prompt": "rolling waves"})
	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeResult(t, recorder)
	assert.Equal(t, model.StatusCompleted, result.Status)
	assert.Equal(t, "https://videos.example.com/out.mp4", result.VideoURL)
	assert.Equal(t, "https://videos.example.com/out.jpg", result.PosterURL)
}

func TestGenerateProviderFailureFallsBackToMock(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"out of credits"}`, http.StatusPaymentRequired)
	}))
	defer upstream.Close()

	engine := newTestServer(relay.NewRouter(fal.NewAdaptor("fal_secret", upstream.URL)))

	recorder := postGenerate(t, engine, map[string]string{"mode": "text", "prompt": "rolling waves"})
	require.Equal(t, http.StatusOK, recorder.Code)
	result := decodeResult(t, recorder)
	assert.Equal(t, model.StatusMock, result.Status)
	assert.Equal(t, mock.Catalog(model.ModeText).VideoURL, result.VideoURL)
}
