package lexer

import (
	"strconv"

	"github.com/papyc-lang/papyc/internal/token"
)

// scanNumber scans an Integer or Float literal. start is the offset of the
// token's first byte (the leading '-' when negative is consumed as part of
// the number per spec §4.C). negative indicates the '-' branch in
// realConsume already consumed the sign and is about to hand off to the
// digit that follows it.
func (l *Lexer) scanNumber(start int, negative bool) {
	var buf []byte
	if negative {
		buf = append(buf, '-')
		buf = append(buf, byte(l.getChar())) // the digit realConsume already confirmed is next
	} else {
		buf = append(buf, l.src[start])
	}

	// Hex: only recognized for a bare (non-negative) leading '0'.
	if !negative && buf[0] == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		buf = append(buf, byte(l.getChar()))
		for isHexDigit(l.peekChar()) {
			buf = append(buf, byte(l.getChar()))
		}
		v, _ := strconv.ParseUint(string(buf[2:]), 16, 64)
		l.setTok(token.Integer, start)
		l.cur.Payload.Int = int32(uint32(v))
		return
	}

	for isASCIIDigit(l.peekChar()) {
		buf = append(buf, byte(l.getChar()))
	}

	if l.peekChar() == '.' {
		buf = append(buf, byte(l.getChar()))
		for isASCIIDigit(l.peekChar()) {
			buf = append(buf, byte(l.getChar()))
		}

		if l.opts.EnableLanguageExtensions && l.peekChar() == 'e' {
			buf = append(buf, byte(l.getChar()))
			if l.getChar() != '+' {
				l.diagCtx.Error(token.Location{Start: start, End: l.pos}, "Unexpected character 'e'!")
			}
			buf = append(buf, '+')
			for isASCIIDigit(l.peekChar()) {
				buf = append(buf, byte(l.getChar()))
			}
		}

		f, _ := strconv.ParseFloat(string(buf), 32)
		l.setTok(token.Float, start)
		l.cur.Payload.Float = float32(f)
		return
	}

	// Plain integer unless it overflows 32 bits, in which case spec §9 (iii)
	// codifies a silent fallback to Float rather than an error.
	if v, err := strconv.ParseUint(string(buf), 10, 32); err == nil {
		l.setTok(token.Integer, start)
		l.cur.Payload.Int = int32(uint32(v))
		return
	}
	if v, err := strconv.ParseInt(string(buf), 10, 32); err == nil {
		l.setTok(token.Integer, start)
		l.cur.Payload.Int = int32(v)
		return
	}
	f, _ := strconv.ParseFloat(string(buf), 32)
	l.setTok(token.Float, start)
	l.cur.Payload.Float = float32(f)
}
