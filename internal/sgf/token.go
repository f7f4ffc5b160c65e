// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package sgf

// Span is a half-open [Start, End) byte range into the source text. Spans
// exist only for diagnostics; nothing in the data model depends on them
// after a token has been consumed.
type Span struct {
	Start int
	End   int
}

type TokenType uint8

const (
	TokenTypeUnknown TokenType = iota
	TokenTypeLeftParen
	TokenTypeRightParen
	TokenTypeSemicolon
	TokenTypeTag
	TokenTypeValue
	TokenTypeEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeLeftParen:
		return "LeftParen"
	case TokenTypeRightParen:
		return "RightParen"
	case TokenTypeSemicolon:
		return "Semicolon"
	case TokenTypeTag:
		return "Tag"
	case TokenTypeValue:
		return "Value"
	case TokenTypeEOF:
		return "EOF"
	}
	return "Unknown"
}

// Token is one lexical unit of SGF text. Value holds the token text exactly
// as it appears in the source: bracketed values keep their backslash escape
// markers, and the surrounding '[' and ']' are not included.
type Token struct {
	Type  TokenType
	Value string
	Span  Span
}

func NewToken(t TokenType, value string, start int, end int) Token {
	return Token{
		Type:  t,
		Value: value,
		Span:  Span{Start: start, End: end},
	}
}
