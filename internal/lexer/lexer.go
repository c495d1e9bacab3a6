// Package lexer implements the Papyrus source tokenizer: spec §4.C.
//
// A Lexer owns no shared state beyond the idarena.Arena, diag.Context, and
// token.KeywordTable handed to it at construction. Each file-compile worker
// (spec §5) has its own Lexer, Arena and Context, so a Lexer is never used
// from more than one goroutine; the KeywordTable is only read and may be
// shared by every worker.
package lexer

import (
	"github.com/papyc-lang/papyc/internal/diag"
	"github.com/papyc-lang/papyc/internal/idarena"
	"github.com/papyc-lang/papyc/internal/token"
)

// eof is the sentinel realConsume's byte-at-a-time scan compares against;
// it can never collide with a real source byte since getChar returns an
// int, not a byte.
const eof = -1

// MaxPeek is the lookahead buffer's fixed capacity (spec §4.C: "a small
// fixed constant (≥4 suffices for the grammar)").
const MaxPeek = 8

// Options gates the compatibility and extension behaviors spec §4.C and
// §6 describe.
type Options struct {
	// AllowCompilerIdentifiers permits a bare "::" to start an identifier.
	AllowCompilerIdentifiers bool
	// AllowDecompiledStructNameRefs permits a "#"-suffixed run after an
	// identifier, included verbatim in the emitted lexeme.
	AllowDecompiledStructNameRefs bool
	// EnableLanguageExtensions turns on the extension keyword set and the
	// "e+" float exponent notation.
	EnableLanguageExtensions bool
}

// Lexer tokenizes src one token at a time, buffering up to MaxPeek tokens
// of lookahead for peekKind.
type Lexer struct {
	src []byte
	pos int

	arena    *idarena.Arena
	diagCtx  *diag.Context
	keywords *token.KeywordTable
	opts     Options

	cur token.Token

	// peeked is a fixed-capacity ring: peeked[peekedHead:peekedHead+peekedCount]
	// (mod len(peeked)) holds tokens produced ahead of the caller's current
	// position, exactly mirroring the source lexer's "peekedTokens" array
	// plus head/count indices (spec §4.C "Lookahead buffer").
	peeked      [MaxPeek]token.Token
	peekedHead  int
	peekedCount int
}

// New creates a Lexer over src. arena, diagCtx, and keywords must outlive
// the Lexer; arena and diagCtx must not be shared with any concurrently
// running Lexer, while keywords, which the Lexer only reads, may be.
func New(src []byte, arena *idarena.Arena, diagCtx *diag.Context, keywords *token.KeywordTable, opts Options) *Lexer {
	l := &Lexer{src: src, arena: arena, diagCtx: diagCtx, keywords: keywords, opts: opts}
	l.consume()
	return l
}

// Current returns the most recently consumed token.
func (l *Lexer) Current() token.Token { return l.cur }

// Consume advances to the next token, making it the new Current(). After
// Consume returns, Current() is never a token that was sitting unread in
// the peek buffer without having been popped from it (spec §4.C invariant).
func (l *Lexer) Consume() {
	l.consume()
}

func (l *Lexer) consume() {
	if l.peekedCount > 0 {
		l.cur = l.peeked[l.peekedHead]
		l.peekedHead = (l.peekedHead + 1) % len(l.peeked)
		l.peekedCount--
		return
	}
	l.realConsume()
}

// PeekKind reports the kind of the token distance positions ahead of
// Current(), without consuming anything. distance must be in [0, MaxPeek).
func (l *Lexer) PeekKind(distance int) token.Kind {
	if distance < l.peekedCount {
		idx := (l.peekedHead + distance) % len(l.peeked)
		return l.peeked[idx].Kind
	}

	saved := l.cur
	for i := l.peekedCount; i <= distance; i++ {
		l.realConsume()
		idx := (l.peekedHead + i) % len(l.peeked)
		l.peeked[idx] = l.cur
		l.peekedCount++
	}
	l.cur = saved
	return l.peeked[(l.peekedHead+distance)%len(l.peeked)].Kind
}

// getChar consumes and returns the next source byte, or eof at end of
// input.
func (l *Lexer) getChar() int {
	if l.pos >= len(l.src) {
		return eof
	}
	c := l.src[l.pos]
	l.pos++
	return int(c)
}

// peekChar returns the next source byte without consuming it, or eof.
func (l *Lexer) peekChar() int {
	if l.pos >= len(l.src) {
		return eof
	}
	return int(l.src[l.pos])
}

func (l *Lexer) setTok(kind token.Kind, start int) {
	l.cur = token.Token{Kind: kind, Location: token.Location{Start: start, End: l.pos}}
}

func (l *Lexer) setIdentTok(kind token.Kind, start int, text string) {
	l.cur = token.Token{
		Kind:     kind,
		Location: token.Location{Start: start, End: l.pos},
		Payload:  token.Payload{Ident: l.arena.InternString(text)},
	}
}

// realConsume scans exactly one token from the underlying byte stream,
// restarting (via the for loop below) whenever it skips something that
// produces no token of its own: whitespace, comments, a line-continuation
// backslash.
func (l *Lexer) realConsume() {
	for {
		start := l.pos
		c := l.getChar()

		switch {
		case c == eof:
			// Always pretend there's an EOL at the end of the file, then
			// END on the following call (spec §4.C "End-of-stream policy").
			// The synthetic EOL is the only EOL that starts at len(src).
			if l.cur.Kind == token.EOL && l.cur.Location.Start == len(l.src) {
				l.setTok(token.END, start)
			} else {
				l.setTok(token.EOL, start)
			}
			return

		case c == '(':
			l.setTok(token.LParen, start)
			return
		case c == ')':
			l.setTok(token.RParen, start)
			return
		case c == '[':
			l.setTok(token.LSquare, start)
			return
		case c == ']':
			l.setTok(token.RSquare, start)
			return
		case c == '.':
			l.setTok(token.Dot, start)
			return
		case c == ',':
			l.setTok(token.Comma, start)
			return

		case c == '=':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.CmpEq, start)
			} else {
				l.setTok(token.Equal, start)
			}
			return
		case c == '!':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.CmpNeq, start)
			} else {
				l.setTok(token.Exclaim, start)
			}
			return
		case c == '+':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.PlusEqual, start)
			} else {
				l.setTok(token.Plus, start)
			}
			return
		case c == '-':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.MinusEqual, start)
				return
			}
			if isASCIIDigit(l.peekChar()) {
				l.scanNumber(start, true)
				return
			}
			l.setTok(token.Minus, start)
			return
		case c == '*':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.MulEqual, start)
			} else {
				l.setTok(token.Mul, start)
			}
			return
		case c == '/':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.DivEqual, start)
			} else {
				l.setTok(token.Div, start)
			}
			return
		case c == '%':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.ModEqual, start)
			} else {
				l.setTok(token.Mod, start)
			}
			return
		case c == '<':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.CmpLte, start)
			} else {
				l.setTok(token.CmpLt, start)
			}
			return
		case c == '>':
			if l.peekChar() == '=' {
				l.getChar()
				l.setTok(token.CmpGte, start)
			} else {
				l.setTok(token.CmpGt, start)
			}
			return

		case c == '|':
			if l.peekChar() != '|' {
				l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Bitwise OR is unsupported. Did you intend to use a logical or (\"||\") instead?")
			} else {
				l.getChar()
			}
			l.setTok(token.BooleanOr, start)
			return
		case c == '&':
			if l.peekChar() != '&' {
				l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Bitwise AND is unsupported. Did you intend to use a logical and (\"&&\") instead?")
			} else {
				l.getChar()
			}
			l.setTok(token.BooleanAnd, start)
			return

		case isASCIIDigit(c):
			l.scanNumber(start, false)
			return

		case isIdentStart(c):
			l.scanIdentifier(start, c)
			return

		case c == '"':
			l.scanString(start)
			return

		case c == ';':
			l.scanComment(start)
			continue

		case c == '{':
			l.scanDocComment(start)
			return

		case c == '\\':
			l.consume()
			if l.cur.Kind != token.EOL {
				l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected '\\'! Division is done with a forward slash '/'.")
			}
			continue

		case c == '\r' || c == '\n':
			if c == '\r' && l.peekChar() == '\n' {
				l.getChar()
			}
			l.diagCtx.PushNextLineOffset(token.Location{Start: start, End: l.pos})
			l.setTok(token.EOL, start)
			return

		case c == ' ' || c == '\t':
			for l.peekChar() == ' ' || l.peekChar() == '\t' {
				l.getChar()
			}
			continue

		default:
			l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected character '%c'!", rune(c))
			continue
		}
	}
}

func isASCIIDigit(c int) bool { return c >= '0' && c <= '9' }

func isASCIIAlphaNumeric(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isASCIIDigit(c)
}

func isIdentStart(c int) bool {
	return c == ':' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c int) bool {
	return isASCIIAlphaNumeric(c) || c == '_' || c == ':'
}

func isHexDigit(c int) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
