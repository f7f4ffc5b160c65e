// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"github.com/q12we34rt5/sgftool/internal/exc"
	"github.com/q12we34rt5/sgftool/internal/iter"
	"github.com/q12we34rt5/sgftool/internal/sgf"
)

// ProgressFunc is called after every token other than EOF with the number
// of consumed bytes and the total source length.
type ProgressFunc func(consumed int, total int)

// Lexer converts the cursor's byte stream into SGF tokens. Whitespace is
// skipped. Tokens carry their source byte spans for error reporting and
// are not retained beyond the next call to NextToken.
type Lexer struct {
	cur      iter.Cursor
	last     sgf.Token
	progress ProgressFunc
}

func NewLexer(cur iter.Cursor, progress ProgressFunc) *Lexer {
	return &Lexer{
		cur:      cur,
		last:     sgf.NewToken(sgf.TokenTypeUnknown, "", cur.Pos(), cur.Pos()),
		progress: progress,
	}
}

// NextToken scans and returns the next token. On a lexical error the
// returned exception carries the offending byte span.
func (l *Lexer) NextToken() (sgf.Token, error) {
	tok, err := l.scan()
	if err != nil {
		return sgf.Token{}, err
	}
	l.last = tok
	if tok.Type != sgf.TokenTypeEOF && l.progress != nil {
		l.progress(l.cur.Pos(), l.cur.Len())
	}
	return tok, nil
}

// CurrentToken returns the token produced by the last call to NextToken.
func (l *Lexer) CurrentToken() sgf.Token {
	return l.last
}

func (l *Lexer) scan() (sgf.Token, error) {
	for {
		start := l.cur.Pos()
		b, ok := l.cur.Next().Get()
		if !ok {
			return sgf.NewToken(sgf.TokenTypeEOF, "", start, start), nil
		}
		switch {
		case b == '(':
			return sgf.NewToken(sgf.TokenTypeLeftParen, "(", start, start+1), nil
		case b == ')':
			return sgf.NewToken(sgf.TokenTypeRightParen, ")", start, start+1), nil
		case b == ';':
			return sgf.NewToken(sgf.TokenTypeSemicolon, ";", start, start+1), nil
		case b == '[':
			return l.scanValue()
		case isTagByte(b):
			return l.scanTag(start, b)
		case isSpace(b):
			continue
		default:
			return sgf.Token{}, exc.New(sgf.Span{Start: start, End: start + 1}, exc.CodeInvalidCharacter, "invalid character")
		}
	}
}

// scanValue consumes bytes up to the first unescaped ']'. A backslash
// escapes exactly the next byte; both are kept verbatim in the token text.
// Resolving escapes is left to downstream consumers.
func (l *Lexer) scanValue() (sgf.Token, error) {
	var value []byte
	escape := false
	for {
		b, ok := l.cur.Next().Get()
		if !ok {
			pos := l.cur.Pos()
			return sgf.Token{}, exc.New(sgf.Span{Start: pos, End: pos}, exc.CodeUnexpectedEOF, "unexpected end of input in property value")
		}
		if b == ']' && !escape {
			break
		}
		if b == '\\' && !escape {
			value = append(value, b)
			escape = true
			continue
		}
		value = append(value, b)
		escape = false
	}
	return sgf.NewToken(sgf.TokenTypeValue, string(value), l.cur.Pos()-len(value)-1, l.cur.Pos()), nil
}

func (l *Lexer) scanTag(start int, first byte) (sgf.Token, error) {
	tag := []byte{first}
	for {
		b, ok := l.cur.Next().Get()
		if !ok {
			break
		}
		if !isTagByte(b) {
			l.cur.Unget()
			break
		}
		tag = append(tag, b)
	}
	return sgf.NewToken(sgf.TokenTypeTag, string(tag), start, l.cur.Pos()), nil
}

func isTagByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
