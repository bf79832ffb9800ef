package mock

import (
	"testing"

	"github.com/reelforge/reel-studio/relay/model"
)

func TestCatalogIsDeterministic(t *testing.T) {
	for _, mode := range []string{model.ModeText, model.ModeImage, model.ModeReference} {
		first := Catalog(mode)
		if first.VideoURL == "" || first.PosterURL == "" {
			t.Fatalf("Catalog(%s) has empty urls", mode)
		}
		for i := 0; i < 5; i++ {
			if got := Catalog(mode); got != first {
				t.Errorf("Catalog(%s) changed between calls: %+v vs %+v", mode, got, first)
			}
		}
	}
}

func TestCatalogEntriesAreDistinct(t *testing.T) {
	text := Catalog(model.ModeText)
	image := Catalog(model.ModeImage)
	reference := Catalog(model.ModeReference)
	if text == image || image == reference || text == reference {
		t.Error("catalog entries should differ per mode")
	}
}

func TestCatalogUnknownModeFallsBack(t *testing.T) {
	if got := Catalog("banana"); got != Catalog(model.ModeText) {
		t.Errorf("Catalog(unknown) = %+v, want the text entry", got)
	}
}
