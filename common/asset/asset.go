package asset

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"strings"

	_ "golang.org/x/image/webp"
)

// Per-kind upload ceilings. Rejections report the ceiling in whole megabytes.
const (
	MaxImageBytes     = 8 << 20
	MaxReferenceBytes = 25 << 20
)

const defaultMimeType = "application/octet-stream"

// Encoded is an upload converted into a provider-ready data URI.
type Encoded struct {
	DataURI  string
	MimeType string
	Size     int64

	// Probed dimensions for image uploads; zero when unknown or not an image.
	Width  int
	Height int
}

// EncodeUpload reads the upload and wraps it as a base64 data URI.
// kind is used in error messages ("image", "reference video").
func EncodeUpload(fh *multipart.FileHeader, maxBytes int64, kind string) (*Encoded, error) {
	if fh.Size > maxBytes {
		return nil, fmt.Errorf("%s upload exceeds %d MB limit", kind, maxBytes>>20)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s upload: %v", kind, err)
	}
	defer file.Close()

	// The header size is client-declared, so cap the read as well.
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s upload: %v", kind, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%s upload exceeds %d MB limit", kind, maxBytes>>20)
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	encoded := &Encoded{
		DataURI:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
		Size:     int64(len(data)),
	}

	if strings.HasPrefix(mimeType, "image/") {
		// Dimension probe is best-effort; a corrupt image still encodes fine.
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			encoded.Width = cfg.Width
			encoded.Height = cfg.Height
		}
	}

	return encoded, nil
}
