package parse

import "testing"

func TestPosts_ThreeMarkers(t *testing.T) {
	text := `Intro the model added.

**POST A**
First variation body.

**POST B**
Second variation body.

**POST C**
Third variation body.`

	res := Posts(text)
	if res.Kind != Structured {
		t.Fatalf("Kind = %v, want Structured", res.Kind)
	}
	if len(res.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(res.Entries))
	}
	wantLabels := []string{"A", "B", "C"}
	wantContent := []string{"First variation body.", "Second variation body.", "Third variation body."}
	for i, e := range res.Entries {
		if e.Label != wantLabels[i] {
			t.Errorf("entry %d label = %q, want %q", i, e.Label, wantLabels[i])
		}
		if e.Content != wantContent[i] {
			t.Errorf("entry %d content = %q, want %q", i, e.Content, wantContent[i])
		}
	}
}

func TestPosts_DecoratedMarkers(t *testing.T) {
	text := `**POST A** - CURIOSITY BOMB:
Hook line.

**POST B** - CONTRARIAN TRUTH:
Contrarian line.

**POST C** - VALUE EXPLOSION:
Value line.`

	res := Posts(text)
	if len(res.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(res.Entries))
	}
	if res.Entries[0].Content != "Hook line." {
		t.Errorf("marker decoration leaked into content: %q", res.Entries[0].Content)
	}
	if res.Entries[2].Label != "C" {
		t.Errorf("last label = %q, want C", res.Entries[2].Label)
	}
}

func TestPosts_NoMarkers(t *testing.T) {
	res := Posts("  Just one plain post with no labels.  ")
	if res.Kind != Unstructured {
		t.Fatalf("Kind = %v, want Unstructured", res.Kind)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	if res.Entries[0].Label != GenericLabel {
		t.Errorf("label = %q, want %q", res.Entries[0].Label, GenericLabel)
	}
	if res.Entries[0].Content != "Just one plain post with no labels." {
		t.Errorf("content not trimmed: %q", res.Entries[0].Content)
	}
}

func TestPosts_EmptyInput(t *testing.T) {
	res := Posts("")
	if res.Kind != Unstructured || len(res.Entries) != 1 {
		t.Fatalf("empty input should yield one unstructured entry, got %+v", res)
	}
	if res.Entries[0].Content != "" {
		t.Errorf("content = %q, want empty", res.Entries[0].Content)
	}
}

func TestPosts_PartialMarkers(t *testing.T) {
	text := "**POST A**\nOnly one variation came back."
	res := Posts(text)
	if res.Kind != Structured {
		t.Fatalf("Kind = %v, want Structured", res.Kind)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	if res.Entries[0].Label != "A" {
		t.Errorf("label = %q, want A", res.Entries[0].Label)
	}
}
