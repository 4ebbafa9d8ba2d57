//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package errors defines the error taxonomy raised by every stage of the
// Lambdora pipeline: tokenizer, parser, macro expander, evaluator, and
// built-in primitives.
package errors

import (
	"fmt"
	"strings"
)

// Kind identifies which stage of the pipeline raised an error.
type Kind int

// Error kinds, one per pipeline stage that can fail.
const (
	_                  Kind = iota // undefined
	KindTokenize                   // lexical: unexpected character, unterminated string
	KindParse                      // syntactic: bad arity, unmatched parens, unexpected token
	KindMacroExpansion             // macro-call arity mismatch
	KindEval                       // unbound variable, type mismatch, non-function application
	KindBuiltin                    // primitive called with wrong operand type
	KindRecursionInit              // read of a binding whose initializer has not completed
)

// String returns a human-readable label for the error kind.
func (k Kind) String() string {
	switch k {
	case KindTokenize:
		return "TokenizeError"
	case KindParse:
		return "ParseError"
	case KindMacroExpansion:
		return "MacroExpansionError"
	case KindEval:
		return "EvalError"
	case KindBuiltin:
		return "BuiltinError"
	case KindRecursionInit:
		return "RecursionInitError"
	default:
		return "Error"
	}
}

// Position marks a location in a source file, filled in by the tokenizer
// and threaded through the parser. The zero value means "no position
// known" (e.g. for errors raised deep in evaluation, long after parsing).
type Position struct {
	File   string
	Line   int
	Column int
}

// Known reports whether this position carries real file/line/column
// information, as opposed to the zero value.
func (p Position) Known() bool {
	return p.Line > 0
}

// LambdoraError is the single error type produced by every pipeline stage.
// Lexical and parse errors carry a Position and a source Snippet; errors
// from later stages (macro expansion, evaluation, built-ins) typically do
// not, since by then the original source text is no longer at hand.
type LambdoraError struct {
	Kind    Kind
	Message string
	Pos     Position
	Snippet string // the offending source line, when known
}

// New creates an error with no position information attached.
func New(kind Kind, message string) *LambdoraError {
	return &LambdoraError{Kind: kind, Message: message}
}

// Newf is a convenience wrapper combining New with fmt.Sprintf.
func Newf(kind Kind, format string, args ...interface{}) *LambdoraError {
	return New(kind, fmt.Sprintf(format, args...))
}

// WithPosition attaches file/line/column and a source snippet to an error.
func WithPosition(kind Kind, message string, pos Position, snippet string) *LambdoraError {
	return &LambdoraError{Kind: kind, Message: message, Pos: pos, Snippet: snippet}
}

// Error implements the error interface.
func (e *LambdoraError) Error() string {
	if !e.Pos.Known() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s:%d:%d)", e.Kind, e.Message, e.Pos.File, e.Pos.Line, e.Pos.Column)
}

// Pretty renders the error the way the REPL and file runner present it to
// a human: the message, then (if position info is present) the offending
// line with a caret under the column, then a short tip for common
// mistakes.
func (e *LambdoraError) Pretty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Message)
	if e.Pos.Known() && e.Snippet != "" {
		fmt.Fprintf(&b, "  %s:%d:%d\n", e.Pos.File, e.Pos.Line, e.Pos.Column)
		fmt.Fprintf(&b, "  %s\n", e.Snippet)
		col := e.Pos.Column
		if col < 1 {
			col = 1
		}
		b.WriteString("  " + strings.Repeat(" ", col-1) + "^\n")
	}
	if tip := tipFor(e); tip != "" {
		fmt.Fprintf(&b, "  tip: %s\n", tip)
	}
	return b.String()
}

// tipFor returns a short, tailored suggestion for a handful of very common
// mistakes. It deliberately only covers the frequent cases; anything else
// gets no tip at all rather than a generic, useless one.
func tipFor(e *LambdoraError) string {
	msg := strings.ToLower(e.Message)
	switch {
	case strings.Contains(msg, "unbound variable"):
		return "check the spelling, or define it first with (define name value)"
	case strings.Contains(msg, "expected ')'"), strings.Contains(msg, "unexpected )"):
		return "you may be missing a closing paren, or have an extra one"
	case strings.Contains(msg, "lambda"), strings.Contains(msg, "λ"):
		return "lambda syntax is (lambda param . body) or (λ param . body)"
	case strings.Contains(msg, "eof"):
		return "the expression is unterminated; check for a missing ')'"
	default:
		return ""
	}
}

// Is supports errors.Is by comparing error kinds, so callers can write
// errors.Is(err, errors.New(errors.KindEval, "")) style checks when they
// only care about the category.
func (e *LambdoraError) Is(target error) bool {
	other, ok := target.(*LambdoraError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
