package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GetTimestamp() int64 {
	return time.Now().Unix()
}

func GetTimeString() string {
	now := time.Now()
	return fmt.Sprintf("%s%d", now.Format("20060102150405"), now.UnixNano()%1e9)
}

// GenRequestID generates a sortable id for request tracing.
func GenRequestID() string {
	return GetTimeString() + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// GenJobID generates the opaque job identifier returned to the client.
// Not persisted anywhere; it only exists for client-side tracking.
func GenJobID() string {
	return "job_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
