package hashtag

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeGen struct {
	got string
	out string
	err error
}

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	f.got = prompt
	return f.out, f.err
}

func TestResearch_DefaultContentType(t *testing.T) {
	gen := &fakeGen{out: "tiers"}
	s := New(gen)
	if _, err := s.Research(context.Background(), "ai", "tech", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.got, "**Content Type:** post") {
		t.Errorf("empty content type should default to post: %q", gen.got)
	}
}

func TestTrending_DefaultLimit(t *testing.T) {
	gen := &fakeGen{out: "tags"}
	s := New(gen)
	if _, err := s.Trending(context.Background(), "fintech", 0); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.got, "TOP 15 TRENDING") {
		t.Errorf("zero limit should default to 15: %q", gen.got)
	}
}

func TestDetectBanned_EmbedsTags(t *testing.T) {
	gen := &fakeGen{out: "SAFE ..."}
	s := New(gen)
	if _, err := s.DetectBanned(context.Background(), []string{"#ai", "#follow4follow"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.got, "#ai, #follow4follow") {
		t.Errorf("tags not embedded: %q", gen.got)
	}
}

func TestStrategy_Error(t *testing.T) {
	boom := errors.New("nope")
	s := New(&fakeGen{err: boom})
	if _, err := s.Strategy(context.Background(), "research"); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
