// Package validator normalizes the raw generate form into a typed request.
// Out-of-range numbers are clamped and bad aspect ratios fall back to the
// default instead of erroring; only a bad mode or a missing prompt/upload is a
// client-visible failure.
package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/reelforge/reel-studio/relay/model"
)

var aspectRatioPattern = regexp.MustCompile(`^\d+(\.\d+)?:\d+(\.\d+)?$`)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("aspect_ratio", func(fl validator.FieldLevel) bool {
		return aspectRatioPattern.MatchString(fl.Field().String())
	})
}

// Normalize builds a GenerationRequest from the raw form. No I/O happens
// here; uploads are attached by the caller after mode is known.
func Normalize(form *model.GenerateForm) (*model.GenerationRequest, error) {
	request := &model.GenerationRequest{
		Mode:           strings.ToLower(strings.TrimSpace(form.Mode)),
		Prompt:         strings.TrimSpace(form.Prompt),
		NegativePrompt: strings.TrimSpace(form.NegativePrompt),
		Duration:       clampNumber(form.Duration, model.DefaultDuration, model.MinDuration, model.MaxDuration),
		Guidance:       clampNumber(form.Guidance, model.DefaultGuidance, model.MinGuidance, model.MaxGuidance),
		AspectRatio:    normalizeAspectRatio(form.AspectRatio),
	}

	if err := validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return nil, describeFieldError(validationErrors[0], form)
		}
		return nil, err
	}

	return request, nil
}

func describeFieldError(fe validator.FieldError, form *model.GenerateForm) error {
	switch fe.Field() {
	case "Mode":
		return fmt.Errorf("unsupported mode: %q (expected text, image or reference)", form.Mode)
	case "Prompt":
		return errors.New("prompt is required for text mode")
	default:
		// Duration/Guidance/AspectRatio are clamped before validation and
		// cannot fail; anything else here is a programming error.
		return fmt.Errorf("invalid field %s", fe.Field())
	}
}

// clampNumber parses raw as a float and clamps it into [min, max].
// Unparsable or non-finite input takes the default without erroring.
func clampNumber(raw string, defaultValue, min, max float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return defaultValue
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func normalizeAspectRatio(raw string) string {
	raw = strings.TrimSpace(raw)
	if aspectRatioPattern.MatchString(raw) {
		return raw
	}
	return model.DefaultAspectRatio
}
