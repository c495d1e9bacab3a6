package lexer

import "github.com/papyc-lang/papyc/internal/token"

// scanComment consumes either a line comment (";..." to end of line) or a
// multiline comment (";/ ... /;"), starting just after the leading ';' has
// been consumed (spec §4.C "Comments"). It never produces a token itself;
// the caller loops back into realConsume.
func (l *Lexer) scanComment(start int) {
	if l.peekChar() == '/' {
		l.getChar()
		l.scanMultilineComment(start)
		return
	}

	for l.peekChar() != '\r' && l.peekChar() != '\n' && l.peekChar() != eof {
		l.getChar()
	}
}

// scanMultilineComment consumes up to and including the closing "/;",
// tracking line offsets for any newlines it swallows along the way so the
// diagnostic line map stays accurate.
func (l *Lexer) scanMultilineComment(start int) {
	for {
		c := l.peekChar()
		switch {
		case c == eof:
			l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected EOF before the end of a multiline comment!")
			return
		case c == '/':
			l.getChar()
			if l.peekChar() == ';' {
				l.getChar()
				return
			}
		case c == '\r':
			l.getChar()
			if l.peekChar() == '\n' {
				l.getChar()
			}
			l.diagCtx.PushNextLineOffset(token.Location{Start: start, End: l.pos})
		case c == '\n':
			l.getChar()
			l.diagCtx.PushNextLineOffset(token.Location{Start: start, End: l.pos})
		default:
			l.getChar()
		}
	}
}
