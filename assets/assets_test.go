package assets

import (
	"bytes"
	"testing"
)

func TestBuild(t *testing.T) {
	page, err := Build(PageData{
		Title:       "Shortest path on a sphere",
		Attribution: "demo",
		Format:      "webp",
		MaxStep:     4,
		Size:        512,
		FocusLon:    10,
		FocusLat:    20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range [][]byte{
		[]byte("Shortest path on a sphere"),
		[]byte("window.TUTORIAL"),
		[]byte("data:image/svg+xml;base64,"),
		[]byte("/api/steps/"),
		[]byte("demo"),
	} {
		if !bytes.Contains(page, want) {
			t.Errorf("page does not contain %q", want)
		}
	}

	if bytes.Contains(page, []byte("{{")) {
		t.Error("page still contains template actions")
	}
}

func TestBuild_NoAttribution(t *testing.T) {
	page, err := Build(PageData{Title: "t", MaxStep: 4, Size: 64, Format: "png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bytes.Contains(page, []byte("<footer")) {
		t.Error("footer should be omitted without attribution")
	}
}
