package papyc

import (
	"context"
	"testing"

	"github.com/papyc-lang/papyc/internal/token"
)

func TestCompileReturnsPerFileTokenCounts(t *testing.T) {
	files := []SourceFile{
		{Path: "a.psc", Contents: []byte("int x = 1\n")},
		{Path: "b.psc", Contents: []byte("float y = 2.5\n")},
	}
	res, err := Compile(context.Background(), NewCompileConfig(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("expected 2 file results, got %d", len(res.Files))
	}
	for _, fr := range res.Files {
		if fr.FatalErr != nil {
			t.Fatalf("file %s: unexpected fatal error: %v", fr.Path, fr.FatalErr)
		}
		if fr.TokenCount == 0 {
			t.Fatalf("file %s: expected a nonzero token count", fr.Path)
		}
	}
}

func TestCompileAccumulatesDiagnosticsPerFile(t *testing.T) {
	files := []SourceFile{
		{Path: "bad.psc", Contents: []byte(`"unterminated`)},
		{Path: "good.psc", Contents: []byte("int x = 1\n")},
	}
	res, err := Compile(context.Background(), NewCompileConfig(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Files[0].Diagnostics) == 0 {
		t.Fatal("expected a diagnostic for the unterminated string")
	}
	if len(res.Files[1].Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics for the clean file, got %v", res.Files[1].Diagnostics)
	}
}

func TestCompileRejectsUnrecognizedGame(t *testing.T) {
	cfg := NewCompileConfig().WithGame(token.Game(200))
	_, err := Compile(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("expected an error for an out-of-range game")
	}
}

func TestCompileWithNoFilesReturnsEmptyResult(t *testing.T) {
	res, err := Compile(context.Background(), NewCompileConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Files) != 0 {
		t.Fatalf("expected 0 file results, got %d", len(res.Files))
	}
}
