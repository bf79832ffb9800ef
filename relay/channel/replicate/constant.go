package replicate

const DefaultBaseURL = "https://api.replicate.com"

const DefaultVideoModel = "wan-video/wan-2.2-t2v-fast"

const predictionsPath = "/v1/predictions"

const (
	PredictionStatusStarting   = "starting"
	PredictionStatusProcessing = "processing"
	PredictionStatusSucceeded  = "succeeded"
	PredictionStatusFailed     = "failed"
	PredictionStatusCanceled   = "canceled"
)
