// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/q12we34rt5/sgftool/internal/exc"
	"github.com/q12we34rt5/sgftool/internal/iter"
	"github.com/q12we34rt5/sgftool/internal/sgf"
)

func TestLexer(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected []sgf.Token
		errCode  string
	}{
		{
			name:  "empty input",
			input: "",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeEOF, "", 0, 0),
			},
		},
		{
			name:  "single node",
			input: "(;A[a])",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeLeftParen, "(", 0, 1),
				sgf.NewToken(sgf.TokenTypeSemicolon, ";", 1, 2),
				sgf.NewToken(sgf.TokenTypeTag, "A", 2, 3),
				sgf.NewToken(sgf.TokenTypeValue, "a", 4, 6),
				sgf.NewToken(sgf.TokenTypeRightParen, ")", 6, 7),
				sgf.NewToken(sgf.TokenTypeEOF, "", 7, 7),
			},
		},
		{
			name:  "whitespace is skipped",
			input: " (\t)\n",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeLeftParen, "(", 1, 2),
				sgf.NewToken(sgf.TokenTypeRightParen, ")", 3, 4),
				sgf.NewToken(sgf.TokenTypeEOF, "", 5, 5),
			},
		},
		{
			name:  "tag with digits and underscore",
			input: "AB_9",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeTag, "AB_9", 0, 4),
				sgf.NewToken(sgf.TokenTypeEOF, "", 4, 4),
			},
		},
		{
			name:  "tags are case sensitive and split on punctuation",
			input: "ab(",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeTag, "ab", 0, 2),
				sgf.NewToken(sgf.TokenTypeLeftParen, "(", 2, 3),
				sgf.NewToken(sgf.TokenTypeEOF, "", 3, 3),
			},
		},
		{
			name:  "empty value",
			input: "A[]",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeTag, "A", 0, 1),
				sgf.NewToken(sgf.TokenTypeValue, "", 2, 3),
				sgf.NewToken(sgf.TokenTypeEOF, "", 3, 3),
			},
		},
		{
			name:  "escaped closing bracket keeps the backslash",
			input: "(;A[x\\]y])",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeLeftParen, "(", 0, 1),
				sgf.NewToken(sgf.TokenTypeSemicolon, ";", 1, 2),
				sgf.NewToken(sgf.TokenTypeTag, "A", 2, 3),
				sgf.NewToken(sgf.TokenTypeValue, "x\\]y", 4, 9),
				sgf.NewToken(sgf.TokenTypeRightParen, ")", 9, 10),
				sgf.NewToken(sgf.TokenTypeEOF, "", 10, 10),
			},
		},
		{
			name:  "value keeps structural characters verbatim",
			input: "A[(;)]",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeTag, "A", 0, 1),
				sgf.NewToken(sgf.TokenTypeValue, "(;)", 2, 6),
				sgf.NewToken(sgf.TokenTypeEOF, "", 6, 6),
			},
		},
		{
			name:  "unterminated value",
			input: "(;A[abc",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeLeftParen, "(", 0, 1),
				sgf.NewToken(sgf.TokenTypeSemicolon, ";", 1, 2),
				sgf.NewToken(sgf.TokenTypeTag, "A", 2, 3),
			},
			errCode: exc.CodeUnexpectedEOF,
		},
		{
			name:  "invalid character",
			input: "(*",
			expected: []sgf.Token{
				sgf.NewToken(sgf.TokenTypeLeftParen, "(", 0, 1),
			},
			errCode: exc.CodeInvalidCharacter,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			lex := NewLexer(iter.NewStringCursor(testCase.input, 0), nil)
			for _, expected := range testCase.expected {
				tok, err := lex.NextToken()
				require.NoError(t, err)
				require.Equal(t, expected, tok)
				require.Equal(t, expected, lex.CurrentToken())
			}
			if testCase.errCode != "" {
				_, err := lex.NextToken()
				require.Error(t, err)
				e, ok := err.(exc.Exception)
				require.True(t, ok)
				require.Equal(t, testCase.errCode, e.Code())
				require.True(t, exc.IsLexical(err))
			}
		})
	}
}

func TestLexerErrorSpans(t *testing.T) {
	t.Parallel()

	t.Run("unterminated value points at end of input", func(t *testing.T) {
		t.Parallel()
		lex := NewLexer(iter.NewStringCursor("[abc", 0), nil)
		_, err := lex.NextToken()
		require.Error(t, err)
		e := err.(exc.Exception)
		require.Equal(t, sgf.Span{Start: 4, End: 4}, e.Span())
	})

	t.Run("invalid character points at the character", func(t *testing.T) {
		t.Parallel()
		lex := NewLexer(iter.NewStringCursor("  *", 0), nil)
		_, err := lex.NextToken()
		require.Error(t, err)
		e := err.(exc.Exception)
		require.Equal(t, sgf.Span{Start: 2, End: 3}, e.Span())
	})
}

func TestLexerStartOffset(t *testing.T) {
	t.Parallel()

	// Resume lexing mid-buffer; spans stay relative to the whole source.
	lex := NewLexer(iter.NewStringCursor("(;A[a])", 6), nil)
	tok, err := lex.NextToken()
	require.NoError(t, err)
	require.Equal(t, sgf.NewToken(sgf.TokenTypeRightParen, ")", 6, 7), tok)
}

func TestLexerProgress(t *testing.T) {
	t.Parallel()

	type report struct {
		consumed int
		total    int
	}
	var reports []report
	lex := NewLexer(iter.NewStringCursor("(;A[a])", 0), func(consumed int, total int) {
		reports = append(reports, report{consumed: consumed, total: total})
	})
	for {
		tok, err := lex.NextToken()
		require.NoError(t, err)
		if tok.Type == sgf.TokenTypeEOF {
			break
		}
	}
	// One report per non-EOF token, none for EOF.
	require.Equal(t, []report{
		{consumed: 1, total: 7},
		{consumed: 2, total: 7},
		{consumed: 3, total: 7},
		{consumed: 6, total: 7},
		{consumed: 7, total: 7},
	}, reports)
}
