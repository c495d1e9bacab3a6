// Package papyc compiles Papyrus scripts into .pex bytecode modules.
package papyc

import (
	"fmt"

	"github.com/papyc-lang/papyc/internal/token"
)

// CompileConfig controls how a batch of source files is compiled, with the
// default implementation provided by NewCompileConfig.
type CompileConfig struct {
	game                          token.Game
	enableLanguageExtensions      bool
	allowCompilerIdentifiers      bool
	allowDecompiledStructNameRefs bool
	anonymizeOutput               bool
	emitDebugInfo                 bool
}

// NewCompileConfig returns a CompileConfig targeting Skyrim with no
// language extensions and debug info on, matching the reference compiler's
// own defaults.
func NewCompileConfig() *CompileConfig {
	return &CompileConfig{game: token.Skyrim, emitDebugInfo: true}
}

// clone ensures all fields are copied even as the struct grows.
func (c *CompileConfig) clone() *CompileConfig {
	ret := *c
	return &ret
}

// WithGame selects which game's keyword set and object model the sources
// are checked against.
func (c *CompileConfig) WithGame(game token.Game) *CompileConfig {
	ret := c.clone()
	ret.game = game
	return ret
}

// WithLanguageExtensions toggles the non-canonical control-flow and syntax
// additions (for, foreach, switch, the 'e' float-exponent suffix, and so
// on) gated by token.NewKeywordTable's extensions flag.
func (c *CompileConfig) WithLanguageExtensions(enabled bool) *CompileConfig {
	ret := c.clone()
	ret.enableLanguageExtensions = enabled
	return ret
}

// WithCompilerIdentifiers allows source to reference the `::`-prefixed
// identifiers the compiler itself synthesizes (temp locals, state names).
// User scripts should almost never need this; it exists for recompiling
// decompiler output.
func (c *CompileConfig) WithCompilerIdentifiers(allowed bool) *CompileConfig {
	ret := c.clone()
	ret.allowCompilerIdentifiers = allowed
	return ret
}

// WithDecompiledStructNameRefs lets the lexer accept a "#"-suffixed run
// after an identifier (kept in the identifier's lexeme), the struct-name
// reference form decompiled sources rely on but that hand-written scripts
// never emit naturally.
func (c *CompileConfig) WithDecompiledStructNameRefs(allowed bool) *CompileConfig {
	ret := c.clone()
	ret.allowDecompiledStructNameRefs = allowed
	return ret
}

// WithAnonymizedOutput records whether the compiling machine's
// user/computer name should be scrubbed from emitted debug metadata.
// Compile only tokenizes and emits no debug metadata, so it does not read
// this setting.
func (c *CompileConfig) WithAnonymizedOutput(anonymize bool) *CompileConfig {
	ret := c.clone()
	ret.anonymizeOutput = anonymize
	return ret
}

// WithDebugInfo records whether compiled functions should carry an
// instruction->line debug map. Compile only tokenizes and builds no
// functions, so it does not read this setting.
func (c *CompileConfig) WithDebugInfo(emit bool) *CompileConfig {
	ret := c.clone()
	ret.emitDebugInfo = emit
	return ret
}

func (c *CompileConfig) validate() error {
	if c.game > token.Starfield {
		return fmt.Errorf("papyc: unrecognized game %v", c.game)
	}
	return nil
}
