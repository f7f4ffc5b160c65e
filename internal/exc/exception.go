// © 2025 q12we34rt5
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"

	"github.com/q12we34rt5/sgftool/internal/sgf"
)

// Exception is an error with a stable code and a byte span into the source
// text. Callers are expected to slice the original input with the span when
// rendering diagnostics.
type Exception interface {
	error
	Code() string
	Message() string
	Span() sgf.Span
}

type exc struct {
	code    string
	message string
	span    sgf.Span
}

func (e *exc) Error() string {
	return fmt.Sprintf("%s: %s at [%d,%d)", e.code, e.message, e.span.Start, e.span.End)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Span() sgf.Span {
	return e.span
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(span sgf.Span, code string, message string) Exception {
	return &exc{
		span:    span,
		message: message,
		code:    code,
	}
}

func Wrap(span sgf.Span, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(span, code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(span, code, err.Error()),
	}
}
