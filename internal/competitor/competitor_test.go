package competitor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/postforge/postforge/internal/prompt"
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

func TestContentGaps_DefaultNiche(t *testing.T) {
	gen := &fakeGen{out: "gaps"}
	s := New(gen)
	if _, err := s.ContentGaps(context.Background(), "", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.got, "Analyze the business space") {
		t.Errorf("empty niche should default to business: %q", gen.got)
	}
	if !strings.Contains(gen.got, "top performers") {
		t.Errorf("no names should fall back to top performers")
	}
}

func TestAnalyze_SubstitutesMissingFields(t *testing.T) {
	gen := &fakeGen{out: "report"}
	s := New(gen)
	if _, err := s.Analyze(context.Background(), prompt.CompetitorInput{Name: "Acme"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.got, "**Competitor:** Acme") {
		t.Errorf("name not rendered: %q", gen.got)
	}
	if !strings.Contains(gen.got, "**Profile URL:** "+prompt.NotProvided) {
		t.Errorf("missing URL should be labeled Not provided")
	}
}

func TestReverseEngineer_Error(t *testing.T) {
	boom := errors.New("oops")
	s := New(&fakeGen{err: boom})
	if _, err := s.ReverseEngineer(context.Background(), "post", nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
