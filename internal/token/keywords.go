package token

import "github.com/papyc-lang/papyc/internal/caseless"

// keywordEntry pairs a lowercase lexeme with its kind. The lexeme is stored
// as-is as a map key and Lookup lowers its input before probing, so every
// lexeme here must be written in lowercase.
type keywordEntry struct {
	lexeme string
	kind   Kind
}

// baseKeywords is the Skyrim keyword set, present regardless of Game.
var baseKeywords = []keywordEntry{
	{"as", KAs}, {"auto", KAuto}, {"autoreadonly", KAutoReadOnly}, {"bool", KBool},
	{"else", KElse}, {"elseif", KElseIf}, {"endevent", KEndEvent}, {"endfunction", KEndFunction},
	{"endif", KEndIf}, {"endproperty", KEndProperty}, {"endstate", KEndState}, {"endwhile", KEndWhile},
	{"event", KEvent}, {"extends", KExtends}, {"false", KFalse}, {"float", KFloat},
	{"function", KFunction}, {"global", KGlobal}, {"if", KIf}, {"import", KImport},
	{"int", KInt}, {"is", KIs}, {"length", KLength}, {"native", KNative}, {"new", KNew},
	{"none", KNone}, {"parent", KParent}, {"property", KProperty}, {"return", KReturn},
	{"scriptname", KScriptName}, {"self", KSelf}, {"state", KState}, {"string", KString},
	{"true", KTrue}, {"while", KWhile},
}

// fallout4Keywords is the Fallout 4 / Fallout 76 addition set.
var fallout4Keywords = []keywordEntry{
	{"betaonly", KBetaOnly}, {"const", KConst}, {"customevent", KCustomEvent},
	{"customeventname", KCustomEventName}, {"debugonly", KDebugOnly}, {"endgroup", KEndGroup},
	{"endstruct", KEndStruct}, {"group", KGroup}, {"scripteventname", KScriptEventName},
	{"struct", KStruct}, {"var", KVar},
}

// starfieldKeywords is the Starfield addition set.
var starfieldKeywords = []keywordEntry{
	{"guard", KGuard}, {"endguard", KEndGuard}, {"tryguard", KTryGuard},
}

// extensionKeywords are accepted only when language extensions are enabled,
// independent of Game.
var extensionKeywords = []keywordEntry{
	{"break", KBreak}, {"case", KCase}, {"continue", KContinue}, {"default", KDefault},
	{"do", KDo}, {"endfor", KEndFor}, {"endforeach", KEndForEach}, {"endswitch", KEndSwitch},
	{"for", KFor}, {"foreach", KForEach}, {"in", KIn}, {"loopwhile", KLoopWhile},
	{"step", KStep}, {"switch", KSwitch}, {"to", KTo},
}

// KeywordTable resolves a lexeme to a keyword Kind for a given Game,
// optionally including the language-extension keywords. It is built once
// per Game+extensions combination and reused across every lexer that
// targets it (keyword sets never change mid-compilation).
//
// Lookups key on the lowered lexeme in a plain map, the Go analog of the
// source compiler's caseless_unordered_identifier_ref_map: O(1) average
// instead of scanning the keyword list, which matters since every
// identifier-shaped lexeme the lexer scans probes this table once.
type KeywordTable struct {
	byLowered map[string]Kind
}

// NewKeywordTable builds the keyword table in effect for game, including
// the language-extension keywords when enableExtensions is set (spec §6
// "Language-extension keywords").
func NewKeywordTable(game Game, enableExtensions bool) *KeywordTable {
	t := &KeywordTable{byLowered: make(map[string]Kind, len(baseKeywords)+16)}
	t.add(baseKeywords)
	if game.supportsFallout4Keywords() {
		t.add(fallout4Keywords)
	}
	if game.supportsStarfieldKeywords() {
		t.add(starfieldKeywords)
	}
	if enableExtensions {
		t.add(extensionKeywords)
	}
	return t
}

func (t *KeywordTable) add(entries []keywordEntry) {
	for _, e := range entries {
		t.byLowered[e.lexeme] = e.kind
	}
}

// Lookup resolves lexeme to a keyword Kind, case-insensitively. It returns
// (Unknown, false) for anything not in the table for this Game/extensions
// combination, leaving the caller to emit an Identifier token instead.
func (t *KeywordTable) Lookup(lexeme []byte) (Kind, bool) {
	var buf [32]byte
	var lowered []byte
	if len(lexeme) <= len(buf) {
		lowered = buf[:len(lexeme)]
	} else {
		lowered = make([]byte, len(lexeme))
	}
	copy(lowered, lexeme)
	caseless.ToLowerASCII(lowered)
	k, ok := t.byLowered[string(lowered)]
	return k, ok
}
