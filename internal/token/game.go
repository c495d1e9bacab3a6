package token

// Game selects the target title whose keyword set the lexer gates on (spec
// §6 "Game keyword gating").
type Game byte

const (
	Skyrim Game = iota
	Fallout4
	Fallout76
	Starfield
)

func (g Game) String() string {
	switch g {
	case Skyrim:
		return "Skyrim"
	case Fallout4:
		return "Fallout4"
	case Fallout76:
		return "Fallout76"
	case Starfield:
		return "Starfield"
	default:
		return "Unknown"
	}
}

// supportsFallout4Keywords reports whether g includes the Fallout 4 / 76
// keyword additions (struct, var, group, ...).
func (g Game) supportsFallout4Keywords() bool {
	return g == Fallout4 || g == Fallout76 || g == Starfield
}

// supportsStarfieldKeywords reports whether g includes the Starfield
// additions (guard/endguard/tryguard).
func (g Game) supportsStarfieldKeywords() bool {
	return g == Starfield
}
