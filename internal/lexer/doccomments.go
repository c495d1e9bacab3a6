package lexer

import (
	"bytes"

	"github.com/papyc-lang/papyc/internal/idarena"
	"github.com/papyc-lang/papyc/internal/token"
)

// isDocCommentSpace matches C's isspace for the ASCII range this lexer
// ever sees: space, tab, newline, vertical tab, form feed, and CR.
func isDocCommentSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanDocComment scans a "{ ... }" documentation comment, trimming leading
// whitespace, normalizing CRLF to LF, and trimming trailing whitespace from
// the payload (spec §4.C "Comments").
func (l *Lexer) scanDocComment(start int) {
	for isDocCommentSpace(l.peekChar()) {
		l.getChar()
	}

	contentStart := l.pos
	charsRequired := 0
	for l.peekChar() != '}' && l.peekChar() != eof {
		charsRequired++
		c2 := l.getChar()
		if c2 == '\r' && l.peekChar() == '\n' {
			l.getChar()
			l.diagCtx.PushNextLineOffset(token.Location{Start: start, End: l.pos})
		} else if c2 == '\n' {
			l.diagCtx.PushNextLineOffset(token.Location{Start: start, End: l.pos})
		}
	}
	rawLen := l.pos - contentStart
	raw := l.src[contentStart : contentStart+rawLen]

	if l.peekChar() == eof {
		l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected EOF before the end of a documentation comment!")
	} else {
		l.getChar() // consume closing '}'
	}

	l.setTok(token.DocComment, start)

	// Trim trailing whitespace from the raw (still possibly CRLF-bearing)
	// span, then recount the output length: every CRLF pair left in it
	// becomes a single '\n'.
	lastNonSpace := len(raw) - 1
	for lastNonSpace >= 0 && isDocCommentSpace(int(raw[lastNonSpace])) {
		lastNonSpace--
	}
	raw = raw[:lastNonSpace+1]
	charsRequired = len(raw) - bytes.Count(raw, []byte("\r\n"))

	if charsRequired == len(raw) {
		l.cur.Payload.Ident = l.arena.Intern(raw)
		return
	}

	buf := l.arena.Allocate(charsRequired)
	i, i2 := 0, 0
	for i < charsRequired {
		if raw[i2] == '\r' && i2+1 < len(raw) && raw[i2+1] == '\n' {
			i2 += 2
			buf[i] = '\n'
		} else {
			buf[i] = raw[i2]
			i2++
		}
		i++
	}
	l.cur.Payload.Ident = idarena.RefFromBytes(buf)
}
