package domain

import "testing"

func TestInferMediaKind(t *testing.T) {
	tests := []struct {
		url  string
		want MediaKind
	}{
		{"https://cdn.example/clip.mp4", MediaKindVideo},
		{"https://cdn.example/clip.MOV?sig=abc", MediaKindVideo},
		{"https://cdn.example/clip.webm", MediaKindVideo},
		{"https://cdn.example/video/12345", MediaKindVideo},
		{"https://cdn.example/photo.jpg", MediaKindImage},
		{"https://cdn.example/mp4-cover.png", MediaKindImage},
	}
	for _, tt := range tests {
		if got := InferMediaKind(tt.url); got != tt.want {
			t.Errorf("InferMediaKind(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestRemoveItemDoesNotTouchClone(t *testing.T) {
	s := &Story{ID: "s1", Items: []StoryItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
	c := s.Clone()

	if !c.RemoveItem("b") {
		t.Fatalf("expected item b to be removed")
	}
	if len(c.Items) != 2 || c.Items[0].ID != "a" || c.Items[1].ID != "c" {
		t.Fatalf("unexpected items after removal: %+v", c.Items)
	}
	if len(s.Items) != 3 || s.Items[1].ID != "b" {
		t.Fatalf("original story changed: %+v", s.Items)
	}
	if c.RemoveItem("missing") {
		t.Fatalf("removing an unknown id must report false")
	}
}
