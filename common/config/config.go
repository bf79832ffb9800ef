package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/reelforge/reel-studio/common/env"
)

var SystemName = "Reel Studio"
var ServiceName = "reel-studio"
var InstanceId = uuid.New().String()[:8]

var ServerAddress = "http://localhost:3000"
var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

// Provider credentials. Presence (non-empty) of a credential gates whether that
// provider is attempted at all; the router falls back to the mock catalog when
// every credential is absent.
var FalKey = ""
var FalBaseURL = "https://fal.run"
var ReplicateAPIToken = ""
var ReplicateBaseURL = "https://api.replicate.com"
var ReplicateVideoModel = "wan-video/wan-2.2-t2v-fast"

// Cloudflare R2 (optional). When fully configured, provider output is re-hosted
// into the bucket so returned URLs stay alive past the provider's retention.
var R2AccessKey = ""
var R2SecretKey = ""
var R2Bucket = ""
var R2Endpoint = ""
var R2PublicURL = ""

// Load reads settings from the environment. Called once at process start,
// after the optional .env file has been applied.
func Load() error {
	ServerAddress = env.String("SERVER_ADDRESS", ServerAddress)
	ServiceName = env.String("SERVICE_NAME", ServiceName)
	DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

	FalKey = os.Getenv("FAL_KEY")
	FalBaseURL = env.String("FAL_BASE_URL", FalBaseURL)
	ReplicateAPIToken = os.Getenv("REPLICATE_API_TOKEN")
	ReplicateBaseURL = env.String("REPLICATE_BASE_URL", ReplicateBaseURL)
	ReplicateVideoModel = env.String("REPLICATE_VIDEO_MODEL", ReplicateVideoModel)

	R2AccessKey = os.Getenv("R2_ACCESS_KEY")
	R2SecretKey = os.Getenv("R2_SECRET_KEY")
	R2Bucket = os.Getenv("R2_BUCKET")
	R2Endpoint = os.Getenv("R2_ENDPOINT")
	R2PublicURL = os.Getenv("R2_PUBLIC_URL")

	if R2PartiallyConfigured() {
		return fmt.Errorf("incomplete R2 configuration: R2_ACCESS_KEY, R2_SECRET_KEY, R2_BUCKET and R2_ENDPOINT must all be set")
	}
	return nil
}

func FalEnabled() bool {
	return FalKey != ""
}

func ReplicateEnabled() bool {
	return ReplicateAPIToken != ""
}

func AnyProviderEnabled() bool {
	return FalEnabled() || ReplicateEnabled()
}

func R2Enabled() bool {
	return R2AccessKey != "" && R2SecretKey != "" && R2Bucket != "" && R2Endpoint != ""
}

func R2PartiallyConfigured() bool {
	any := R2AccessKey != "" || R2SecretKey != "" || R2Bucket != "" || R2Endpoint != ""
	return any && !R2Enabled()
}
