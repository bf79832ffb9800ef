// Package mock holds the static placeholder catalog used when no provider is
// configured or every provider attempt failed. It never fails.
package mock

import "github.com/reelforge/reel-studio/relay/model"

type Entry struct {
	VideoURL  string
	PosterURL string
}

// One deterministic entry per mode.
var catalog = map[string]Entry{
	model.ModeText: {
		VideoURL:  "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		PosterURL: "https://storage.googleapis.com/gtv-videos-bucket/sample/images/BigBuckBunny.jpg",
	},
	model.ModeImage: {
		VideoURL:  "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		PosterURL: "https://storage.googleapis.com/gtv-videos-bucket/sample/images/ElephantsDream.jpg",
	},
	model.ModeReference: {
		VideoURL:  "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
		PosterURL: "https://storage.googleapis.com/gtv-videos-bucket/sample/images/ForBiggerBlazes.jpg",
	},
}

// Catalog returns the placeholder pair for mode. Unknown modes map to the
// text entry so the terminal fallback can never fail.
func Catalog(mode string) Entry {
	if entry, ok := catalog[mode]; ok {
		return entry
	}
	return catalog[model.ModeText]
}
