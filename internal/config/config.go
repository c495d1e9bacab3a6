// Package config loads a project's papyc.toml manifest: the persisted form
// of the compatibility flags a caller would otherwise have to repeat on
// every invocation (spec §4.C, §6; see SPEC_FULL.md "Configuration").
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/papyc-lang/papyc/internal/token"
)

// ProjectConfig is the decoded shape of a papyc.toml manifest.
type ProjectConfig struct {
	Game                          string   `toml:"game"`
	EnableLanguageExtensions      bool     `toml:"enable_language_extensions"`
	AllowCompilerIdentifiers      bool     `toml:"allow_compiler_identifiers"`
	AllowDecompiledStructNameRefs bool     `toml:"allow_decompiled_struct_name_refs"`
	AnonymizeOutput               bool     `toml:"anonymize_output"`
	EmitDebugInfo                 bool     `toml:"emit_debug_info"`
	Sources                       []string `toml:"sources"`
}

// gameNames maps a manifest's lowercase "game" string to a token.Game. The
// zero value (Skyrim) is also the default when the field is left empty.
var gameNames = map[string]token.Game{
	"":          token.Skyrim,
	"skyrim":    token.Skyrim,
	"fallout4":  token.Fallout4,
	"fallout76": token.Fallout76,
	"starfield": token.Starfield,
}

// ResolveGame resolves the manifest's Game string to a token.Game, erroring
// on an unrecognized name rather than silently defaulting.
func (c *ProjectConfig) ResolveGame() (token.Game, error) {
	g, ok := gameNames[normalizeGameName(c.Game)]
	if !ok {
		return 0, fmt.Errorf("config: unrecognized game %q", c.Game)
	}
	return g, nil
}

func normalizeGameName(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// LoadProjectConfig reads and decodes the papyc.toml manifest at path.
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg ProjectConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if _, err := cfg.ResolveGame(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
