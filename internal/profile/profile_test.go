package profile

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

func TestAnalyze_EmptyProfileStillPrompts(t *testing.T) {
	gen := &fakeGen{out: "audit"}
	s := New(gen)
	out, err := s.Analyze(context.Background(), prompt.ProfileInput{})
	if err != nil {
		t.Fatal(err)
	}
	if out != "audit" {
		t.Errorf("out = %q", out)
	}
	if !strings.Contains(gen.got, prompt.NotProvided) {
		t.Errorf("missing fields should carry the Not provided label")
	}
}

func TestHeadlines_Defaults(t *testing.T) {
	gen := &fakeGen{out: "five headlines"}
	s := New(gen)
	if _, err := s.Headlines(context.Background(), "", "DevOps", ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.got, "Current: None") {
		t.Errorf("empty current headline should default to None: %q", gen.got)
	}
	if !strings.Contains(gen.got, "Target Audience: Professionals") {
		t.Errorf("empty audience should default to Professionals")
	}
}

func TestAbout_Error(t *testing.T) {
	boom := errors.New("closed")
	s := New(&fakeGen{err: boom})
	if _, err := s.About(context.Background(), prompt.AboutInput{Role: "SRE"}); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
