package lexer

import "github.com/papyc-lang/papyc/internal/token"

// scanIdentifier scans an identifier, compiler-identifier ("::..."), or
// keyword lexeme starting at start, where first is the already-consumed
// first byte (spec §4.C "Identifiers").
func (l *Lexer) scanIdentifier(start int, first int) {
	if first == ':' {
		if !l.opts.AllowCompilerIdentifiers || l.peekChar() != ':' {
			l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected character ':'!")
		}
		// Resynchronize by consuming one character and retrying, per
		// spec §7's lexical-error recovery policy, whether or not the
		// flag/second-colon check above passed.
		l.getChar()
	}

	for isIdentCont(l.peekChar()) {
		l.getChar()
	}

	if l.opts.AllowDecompiledStructNameRefs && l.peekChar() == '#' {
		l.getChar()
		for isASCIIAlphaNumeric(l.peekChar()) || l.peekChar() == '_' {
			l.getChar()
		}
	}

	lexeme := l.src[start:l.pos]
	if kind, ok := l.keywords.Lookup(lexeme); ok {
		l.setTok(kind, start)
		return
	}
	l.setIdentTok(token.Identifier, start, string(lexeme))
}
