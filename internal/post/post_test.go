package post

import (
	"context"
	"errors"
	"testing"

	"github.com/postforge/postforge/internal/parse"
	"github.com/postforge/postforge/internal/prompt"
)

type fakeGen struct {
	out string
	err error
}

func (f *fakeGen) Generate(ctx context.Context, prompt string) (string, error) {
	return f.out, f.err
}

func TestGenerate_SplitsVariations(t *testing.T) {
	gen := &fakeGen{out: "**POST A**\none\n**POST B**\ntwo\n**POST C**\nthree"}
	s := New(gen)

	res, err := s.Generate(context.Background(), prompt.PostsInput{Topic: "ai"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != parse.Structured || len(res.Entries) != 3 {
		t.Fatalf("got kind %v with %d entries", res.Kind, len(res.Entries))
	}
}

func TestGenerate_UnstructuredFallback(t *testing.T) {
	s := New(&fakeGen{out: "one plain post"})
	res, err := s.Generate(context.Background(), prompt.PostsInput{Topic: "ai"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Kind != parse.Unstructured || len(res.Entries) != 1 {
		t.Fatalf("got kind %v with %d entries", res.Kind, len(res.Entries))
	}
}

func TestGenerate_Error(t *testing.T) {
	boom := errors.New("quota")
	s := New(&fakeGen{err: boom})
	_, err := s.Generate(context.Background(), prompt.PostsInput{Topic: "ai"})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

func TestOptimize(t *testing.T) {
	s := New(&fakeGen{out: "1. OPTIMIZED POST ..."})
	out, err := s.Optimize(context.Background(), "Hello world")
	if err != nil || out == "" {
		t.Fatalf("got (%q, %v)", out, err)
	}
}
