// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package iter

import (
	"github.com/q12we34rt5/sgftool/internal/optional"
)

// Cursor is a pull-based view over SGF source text. End of input is
// signaled by an absent Optional rather than an in-band sentinel byte, so
// sources containing embedded null bytes lex correctly.
type Cursor interface {
	// Peek returns the byte at the current position without consuming it.
	Peek() optional.Optional[byte]
	// Next consumes and returns the byte at the current position.
	Next() optional.Optional[byte]
	// Unget steps the cursor back one byte. It is a no-op at the start of
	// the source.
	Unget()
	// Pos returns the current byte offset into the source.
	Pos() int
	// Len returns the total length of the source in bytes.
	Len() int
}

// NewStringCursor returns a Cursor over an in-memory source. A non-zero
// start offset resumes reading mid-buffer; offsets outside the source are
// clamped.
func NewStringCursor(src string, start int) Cursor {
	if start < 0 {
		start = 0
	}
	if start > len(src) {
		start = len(src)
	}
	return &stringCursor{src: src, index: start}
}

type stringCursor struct {
	src   string
	index int
}

func (c *stringCursor) Peek() optional.Optional[byte] {
	if c.index >= len(c.src) {
		return optional.None[byte]()
	}
	return optional.Some(c.src[c.index])
}

func (c *stringCursor) Next() optional.Optional[byte] {
	if c.index >= len(c.src) {
		return optional.None[byte]()
	}
	b := c.src[c.index]
	c.index++
	return optional.Some(b)
}

func (c *stringCursor) Unget() {
	if c.index > 0 {
		c.index--
	}
}

func (c *stringCursor) Pos() int {
	return c.index
}

func (c *stringCursor) Len() int {
	return len(c.src)
}
