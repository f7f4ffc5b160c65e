// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/q12we34rt5/sgftool/internal/exc"
	"github.com/q12we34rt5/sgftool/internal/iter"
	"github.com/q12we34rt5/sgftool/internal/parser"
	"github.com/q12we34rt5/sgftool/internal/sgf"
)

type opts struct {
	DumpTokens bool
	DumpTree   bool
	Progress   bool
	Offset     int
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("sgftool", pflag.PanicOnError)
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream instead of parsing.")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Output the parsed tree after parsing, indented by depth.")
	flags.BoolVar(&op.Progress, "progress", false, "Report lexing progress on STDERR.")
	flags.IntVar(&op.Offset, "offset", 0, "Byte offset to start lexing at.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	exit := 0
	for _, target := range targets {
		if err := run(ctx, op, logger, target); err != nil {
			logger.Error("failed", zap.String("file", target), zap.Error(err))
			exit = 1
		}
	}
	os.Exit(exit)
}

func run(ctx context.Context, op *opts, logger *zap.Logger, target string) error {
	b, err := os.ReadFile(target)
	if err != nil {
		return err
	}
	src := string(b)

	if op.DumpTokens {
		return dumpTokens(src, op.Offset)
	}

	var popts []parser.Option
	if op.Offset != 0 {
		popts = append(popts, parser.OptionWithStartOffset(op.Offset))
	}
	if op.Progress {
		popts = append(popts, parser.OptionWithProgress(func(consumed int, total int) {
			fmt.Fprintf(os.Stderr, "\r%d/%d bytes", consumed, total)
		}))
	}

	allocator := sgf.NewTrackingAllocator()
	p := parser.NewParser(src, allocator, popts...)

	count := 0
	for {
		node, err := p.NextNode(ctx)
		if err != nil {
			// The parser does not unwind a partially built tree; release
			// everything it still owns in one call.
			allocator.DeallocateAll()
			printSpanContext(src, err)
			return err
		}
		if node == nil {
			break
		}
		count++
		if !op.DumpTree {
			fmt.Println(sgf.EncodeNode(node))
		}
	}
	if op.Progress {
		fmt.Fprintln(os.Stderr)
	}
	logger.Info("parsed", zap.String("file", target), zap.Int("nodes", count))

	if op.DumpTree && p.Root() != nil {
		dumpTree(p.Root())
	}
	return nil
}

func dumpTokens(src string, offset int) error {
	lex := parser.NewLexer(iter.NewStringCursor(src, offset), nil)
	for {
		tok, err := lex.NextToken()
		if err != nil {
			printSpanContext(src, err)
			return err
		}
		fmt.Printf("%-10s [%d,%d) %q\n", tok.Type, tok.Span.Start, tok.Span.End, tok.Value)
		if tok.Type == sgf.TokenTypeEOF {
			return nil
		}
	}
}

func dumpTree(root sgf.Node) {
	type item struct {
		node  sgf.Node
		depth int
	}
	stack := []item{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fmt.Printf("%*s%s\n", it.depth*2, "", sgf.EncodeNode(it.node))
		var children []sgf.Node
		for c := it.node.FirstChild(); c != nil; c = c.NextSibling() {
			children = append(children, c)
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, item{node: children[i], depth: it.depth + 1})
		}
	}
}

// printSpanContext renders the source around an exception's byte span with
// the offending range highlighted.
func printSpanContext(src string, err error) {
	var e exc.Exception
	if !errors.As(err, &e) {
		return
	}
	span := e.Span()
	start := clamp(span.Start, 0, len(src))
	end := clamp(span.End, start, len(src))
	lo := clamp(start-20, 0, len(src))
	hi := clamp(end+20, end, len(src))
	bad := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(os.Stderr, "%s%s%s\n", src[lo:start], bad.Sprint(src[start:end]), src[end:hi])
}

func clamp(v int, lo int, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
