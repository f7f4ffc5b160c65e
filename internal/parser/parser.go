// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"context"
	"fmt"

	"github.com/q12we34rt5/sgftool/internal/exc"
	"github.com/q12we34rt5/sgftool/internal/iter"
	"github.com/q12we34rt5/sgftool/internal/sgf"
)

// parseState is the parser's grammar state. Each state maps to the set of
// token types that may legally appear next.
type parseState uint8

const (
	stateStart      parseState = iota // expect the opening of a game tree
	stateTreeOpened                   // a tree's sequence must begin with a node
	stateNodeOpened                   // a new node must receive at least one property
	stateTagSeen                      // a tag must be followed by at least one value
	stateValueSeen                    // value, new property, variation, close, or next node
	stateAfterClose                   // sibling variation or another close
)

type tokenSet uint8

func (s tokenSet) has(t sgf.TokenType) bool {
	return s&(1<<t) != 0
}

func setOf(types ...sgf.TokenType) tokenSet {
	var s tokenSet
	for _, t := range types {
		s |= 1 << t
	}
	return s
}

var legalTokens = [...]tokenSet{
	stateStart:      setOf(sgf.TokenTypeLeftParen),
	stateTreeOpened: setOf(sgf.TokenTypeSemicolon),
	stateNodeOpened: setOf(sgf.TokenTypeTag),
	stateTagSeen:    setOf(sgf.TokenTypeValue),
	stateValueSeen:  setOf(sgf.TokenTypeLeftParen, sgf.TokenTypeRightParen, sgf.TokenTypeSemicolon, sgf.TokenTypeTag, sgf.TokenTypeValue),
	stateAfterClose: setOf(sgf.TokenTypeLeftParen, sgf.TokenTypeRightParen),
}

// frame is one entry of the parser's explicit stack: either a pending left
// parenthesis (span kept for diagnostics) or the node to restore as current
// once the matching ')' is found. A nil node marks the root slot.
type frame struct {
	isParen bool
	span    sgf.Span
	node    sgf.Node
}

type config struct {
	start    int
	progress ProgressFunc
}

type Option func(*config)

// OptionWithStartOffset starts lexing at the given byte offset, resuming
// mid-buffer.
func OptionWithStartOffset(start int) Option {
	return func(cfg *config) {
		cfg.start = start
	}
}

// OptionWithProgress installs a progress callback on the underlying lexer.
func OptionWithProgress(fn ProgressFunc) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// Parser is a resumable SGF parser. Each call to NextNode pulls just enough
// tokens to seal one node and returns it; working memory is bounded by the
// input's nesting depth, not its size. A Parser is single-threaded and
// non-reentrant, and after the first error it is permanently aborted.
type Parser struct {
	lexer     *Lexer
	allocator sgf.NodeAllocator
	stack     []frame
	current   sgf.Node
	root      sgf.Node
	state     parseState

	pendingTag    string
	pendingValues []string

	err  error
	done bool
}

func NewParser(src string, allocator sgf.NodeAllocator, opts ...Option) *Parser {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	cur := iter.NewStringCursor(src, cfg.start)
	return &Parser{
		lexer:     NewLexer(cur, cfg.progress),
		allocator: allocator,
		state:     stateStart,
	}
}

// NextNode returns the next fully-parsed node in document order, which is
// depth-first, left-to-right over the input's nesting. Once the input is
// exhausted with all parentheses balanced it returns (nil, nil), and keeps
// doing so on further calls. Nodes are allocated with the parser's
// allocator and are never deallocated by the parser.
func (p *Parser) NextNode(ctx context.Context) (sgf.Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.done {
		return nil, nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := p.lexer.NextToken()
		if err != nil {
			p.err = err
			return nil, err
		}
		if tok.Type == sgf.TokenTypeEOF {
			return p.finish()
		}
		if !legalTokens[p.state].has(tok.Type) {
			return nil, p.fail(exc.New(tok.Span, exc.CodeUnexpectedToken, unexpectedMessage(tok)))
		}

		var sealed sgf.Node
		switch tok.Type {
		case sgf.TokenTypeLeftParen:
			p.stack = append(p.stack, frame{node: p.current})
			p.stack = append(p.stack, frame{isParen: true, span: tok.Span})
			p.state = stateTreeOpened

		case sgf.TokenTypeSemicolon:
			sealed = p.flush()
			parent := p.current
			p.stack = append(p.stack, frame{node: parent})
			node := p.allocator.Allocate()
			if parent == nil {
				// The root slot holds the single top-level tree this
				// parser instance accepts.
				if p.root != nil {
					return nil, p.fail(exc.New(tok.Span, exc.CodeMultipleRoots, "more than one top-level game tree"))
				}
				p.root = node
			} else {
				parent.AddChild(node)
			}
			p.current = node
			p.state = stateNodeOpened

		case sgf.TokenTypeTag:
			p.flush()
			p.pendingTag = tok.Value
			p.state = stateTagSeen

		case sgf.TokenTypeValue:
			p.pendingValues = append(p.pendingValues, tok.Value)
			p.state = stateValueSeen

		case sgf.TokenTypeRightParen:
			sealed = p.flush()
			i := len(p.stack) - 1
			for i >= 0 && !p.stack[i].isParen {
				i--
			}
			if i < 1 {
				return nil, p.fail(exc.New(tok.Span, exc.CodeUnmatchedRight, "unmatched right parenthesis"))
			}
			p.current = p.stack[i-1].node
			p.stack = p.stack[:i-1]
			p.state = stateAfterClose
		}

		if sealed != nil {
			return sealed, nil
		}
	}
}

// Root returns the top-level node of the parse, or nil if none has been
// allocated yet. The root is standalone: it is never attached to any
// internal placeholder.
func (p *Parser) Root() sgf.Node {
	return p.root
}

// flush seals the pending property, if any, onto the current node and
// returns that node so the caller can yield it.
func (p *Parser) flush() sgf.Node {
	if len(p.pendingValues) == 0 {
		return nil
	}
	p.current.AddProperty(p.pendingTag, p.pendingValues)
	p.pendingTag = ""
	p.pendingValues = nil
	return p.current
}

// finish handles end of input: a non-empty stack means an unmatched '(',
// reported with the span of the oldest one.
func (p *Parser) finish() (sgf.Node, error) {
	for _, f := range p.stack {
		if f.isParen {
			return nil, p.fail(exc.New(f.span, exc.CodeUnmatchedLeft, "unmatched left parenthesis"))
		}
	}
	p.done = true
	return nil, nil
}

func (p *Parser) fail(e exc.Exception) error {
	p.err = e
	return e
}

func unexpectedMessage(tok sgf.Token) string {
	switch tok.Type {
	case sgf.TokenTypeTag, sgf.TokenTypeValue:
		return fmt.Sprintf("unexpected %s %q", tok.Type, tok.Value)
	}
	return fmt.Sprintf("unexpected %s", tok.Type)
}
