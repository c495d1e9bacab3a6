package papyc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/papyc-lang/papyc/internal/diag"
	"github.com/papyc-lang/papyc/internal/idarena"
	"github.com/papyc-lang/papyc/internal/lexer"
	"github.com/papyc-lang/papyc/internal/token"
)

// SourceFile is one input to Compile: a path (used only for reporting) and
// its already-read contents.
type SourceFile struct {
	Path     string
	Contents []byte
}

// FileResult is what Compile produces for one SourceFile.
type FileResult struct {
	Path        string
	TokenCount  int
	Diagnostics []diag.Diagnostic
	// FatalErr is set when the worker recovered a *diag.FatalError instead
	// of running to completion; the file's TokenCount and Diagnostics
	// reflect only the tokens consumed before the panic.
	FatalErr error
}

// CompileResult collects every file's FileResult, in the same order as the
// SourceFile slice passed to Compile.
type CompileResult struct {
	Files []FileResult
}

// Compile tokenizes every file in files concurrently, one worker per file,
// each with its own idarena.Arena, diag.Context, and lexer.Lexer (spec §5:
// "file-parallel, intra-file-serial"). It does not parse or type-check
// Papyrus syntax: the grammar and AST live outside this module's scope.
// Compile fails outright only if cfg is invalid (an unrecognized game) or
// ctx is canceled; per-file fatal compiler errors are reported through that
// file's FileResult instead.
func Compile(ctx context.Context, cfg *CompileConfig, files []SourceFile) (*CompileResult, error) {
	if cfg == nil {
		cfg = NewCompileConfig()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	keywords := token.NewKeywordTable(cfg.game, cfg.enableLanguageExtensions)
	opts := lexer.Options{
		AllowCompilerIdentifiers:      cfg.allowCompilerIdentifiers,
		AllowDecompiledStructNameRefs: cfg.allowDecompiledStructNameRefs,
		EnableLanguageExtensions:      cfg.enableLanguageExtensions,
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = compileFile(f, keywords, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("papyc: %w", err)
	}
	return &CompileResult{Files: results}, nil
}

func compileFile(f SourceFile, keywords *token.KeywordTable, opts lexer.Options) (result FileResult) {
	result.Path = f.Path
	dctx := diag.NewContext()

	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*diag.FatalError)
			if !ok {
				panic(r)
			}
			result.FatalErr = fe
		}
		result.Diagnostics = dctx.Diagnostics()
	}()

	arena := idarena.New(0)
	l := lexer.New(f.Contents, arena, dctx, keywords, opts)
	for {
		result.TokenCount++
		if l.Current().Kind == token.END {
			break
		}
		l.Consume()
	}
	return result
}
