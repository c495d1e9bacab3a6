package lexer

import (
	"github.com/papyc-lang/papyc/internal/idarena"
	"github.com/papyc-lang/papyc/internal/token"
)

// scanString scans a "..." string literal starting just after the opening
// quote has already been consumed at start-1 (spec §4.C "String
// literals"). Unrecognized escapes are reported but still consume both
// characters and appear verbatim in the resulting payload.
func (l *Lexer) scanString(start int) {
	contentStart := l.pos
	charsRequired := 0
	hasEscapes := false

	for l.peekChar() != '"' && l.peekChar() != '\r' && l.peekChar() != '\n' && l.peekChar() != eof {
		if l.peekChar() == '\\' {
			hasEscapes = true
			l.getChar()
			escapeChar := l.getChar()
			switch escapeChar {
			case 'n', 't', '\\', '"':
				// recognized
			case eof:
				l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected EOF before the end of the string.")
				continue
			default:
				l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unrecognized escape sequence: '\\%c'", rune(escapeChar))
				// Both raw characters are preserved verbatim in the
				// payload (spec §4.C), so both count toward the output
				// length; no further "+1" below for this iteration.
				charsRequired += 2
				continue
			}
		} else {
			l.getChar()
		}
		charsRequired++
	}

	rawLen := l.pos - contentStart
	raw := l.src[contentStart : contentStart+rawLen]

	if l.peekChar() != '"' {
		l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unclosed string!")
	} else {
		l.getChar()
	}

	l.setTok(token.String, start)
	if !hasEscapes || charsRequired == len(raw) {
		l.cur.Payload.Ident = l.arena.Intern(raw)
		return
	}

	buf := l.arena.Allocate(charsRequired)
	i, i2 := 0, 0
	for i < charsRequired {
		if raw[i2] == '\\' {
			i2++
			switch raw[i2] {
			case 'n':
				buf[i] = '\n'
			case 't':
				buf[i] = '\t'
			case '\\':
				buf[i] = '\\'
			case '"':
				buf[i] = '"'
			default:
				buf[i] = raw[i2-1]
				i++
				buf[i] = raw[i2]
			}
			i2++
			i++
		} else {
			buf[i] = raw[i2]
			i++
			i2++
		}
	}
	l.cur.Payload.Ident = idarena.RefFromBytes(buf)
}
