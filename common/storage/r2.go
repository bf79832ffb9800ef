package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/reelforge/reel-studio/common/config"
	"github.com/reelforge/reel-studio/common/logger"
)

// Re-hosted objects are capped so a misbehaving provider cannot make us buffer
// arbitrarily large files.
const maxObjectBytes = 512 << 20

var downloadClient = &http.Client{Timeout: 120 * time.Second}

func Enabled() bool {
	return config.R2Enabled()
}

// getExtensionFromMimeType 根据 MIME 类型获取文件扩展名
func getExtensionFromMimeType(mimeType string) string {
	mimeType = strings.ToLower(mimeType)
	switch {
	case strings.Contains(mimeType, "mp4"):
		return ".mp4"
	case strings.Contains(mimeType, "webm"):
		return ".webm"
	case strings.Contains(mimeType, "quicktime"):
		return ".mov"
	case strings.Contains(mimeType, "jpeg"), strings.Contains(mimeType, "jpg"):
		return ".jpg"
	case strings.Contains(mimeType, "png"):
		return ".png"
	case strings.Contains(mimeType, "webp"):
		return ".webp"
	case strings.Contains(mimeType, "gif"):
		return ".gif"
	default:
		return ".bin"
	}
}

func newS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(aws.NewCredentialsCache(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     config.R2AccessKey,
				SecretAccessKey: config.R2SecretKey,
			}, nil
		}))),
		awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: config.R2Endpoint}, nil
			}),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %v", err)
	}

	// Path-Style avoids TLS issues with virtual-host style bucket subdomains
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	}), nil
}

// UploadFromURL downloads the object behind rawURL and re-hosts it in the R2
// bucket under folder. Returns the public URL of the stored copy.
func UploadFromURL(ctx context.Context, rawURL string, folder string) (string, error) {
	if !Enabled() {
		return "", fmt.Errorf("R2 configuration is incomplete")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %v", err)
	}
	resp, err := downloadClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %v", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxObjectBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read download body: %v", err)
	}
	if len(data) > maxObjectBytes {
		return "", fmt.Errorf("object exceeds %d MB re-host limit", maxObjectBytes>>20)
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	// key: <folder>/<timestamp>-<uuid><ext>
	filename := fmt.Sprintf("%s-%s%s",
		time.Now().Format("20060102-150405"),
		strings.ReplaceAll(uuid.New().String(), "-", "")[:12],
		getExtensionFromMimeType(mimeType))
	objectKey := path.Join(folder, filename)

	s3Client, err := newS3Client(ctx)
	if err != nil {
		return "", err
	}

	_, err = s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(config.R2Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %v", err)
	}

	if config.R2PublicURL != "" {
		return strings.TrimSuffix(config.R2PublicURL, "/") + "/" + objectKey, nil
	}
	return strings.TrimSuffix(config.R2Endpoint, "/") + "/" + config.R2Bucket + "/" + objectKey, nil
}

// RehostURL is the best-effort wrapper used on the hot path: any failure keeps
// the provider URL and only leaves a log line.
func RehostURL(ctx context.Context, rawURL string, folder string) string {
	if rawURL == "" || !Enabled() {
		return rawURL
	}
	hosted, err := UploadFromURL(ctx, rawURL, folder)
	if err != nil {
		logger.Warnf(ctx, "R2 re-host failed for %s: %s", rawURL, err.Error())
		return rawURL
	}
	return hosted
}
