//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package repl implements the two external entry points of the
// interpreter: an interactive read-eval-print loop and a sequential file
// runner, both sharing one pipeline (parse, macro-expand, evaluate,
// print) built around a bufio.Reader-driven prompt loop and an
// atExitFuncs cleanup hook.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	lerrors "github.com/ferecci/Lambdora/errors"
	"github.com/ferecci/Lambdora/eval"
	"github.com/ferecci/Lambdora/macro"
	"github.com/ferecci/Lambdora/parser"
	"github.com/ferecci/Lambdora/printer"
	"github.com/ferecci/Lambdora/value"
)

const prompt = "λ> "

const helpText = `Lambdora syntax cheat sheet:
  (lambda x . body)        single-parameter function, also (λ x . body)
  (f a b c)                n-ary application, curried under the hood
  (if cond then else)      conditional
  (define name value)      top-level or local binding
  (letrec ((n v) ...) b)   mutually recursive bindings
  (defmacro name (p...) b) register a tree-rewriting macro
  'expr  (quote expr)      data, not evaluated
  ` + "`expr" + `                   quasiquote template
  ,expr                    unquote hole inside a quasiquote
  exit / quit              leave the REPL
  clear                    clear the terminal
`

// atExitFuncs are invoked, in registration order, by runExitFuncs when
// Session.Run returns. Separate from main's own instance so the REPL
// flushes history to disk on exit/quit and on a Ctrl-D (end of input)
// exit path. No signal is handled, so a Ctrl-C that kills the process
// skips them.
var atExitFuncs []func()

func runAtExit(fn func()) {
	atExitFuncs = append(atExitFuncs, fn)
}

func runExitFuncs() {
	for _, fn := range atExitFuncs {
		fn()
	}
}

// Session is one REPL's state: the shared top-level environment and its
// persisted input history.
type Session struct {
	Env     value.Environment
	History *History
	Out     io.Writer
}

// NewSession builds a Session with history loaded from cfg and env as the
// starting top-level environment (already populated with built-ins and the
// prelude by the caller).
func NewSession(env value.Environment, cfg Config) *Session {
	h := NewHistory(cfg)
	h.Load()
	return &Session{Env: env, History: h, Out: os.Stdout}
}

// Run drives the interactive prompt until exit/quit, EOF, or a read error.
func (s *Session) Run(in io.Reader) {
	runAtExit(s.History.Save)
	defer runExitFuncs()

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(s.Out, prompt)
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			s.History.Add(trimmed)
		}
		if err != nil {
			fmt.Fprintln(s.Out, "\nGoodbye.")
			return
		}

		switch trimmed {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(s.Out, "Goodbye.")
			return
		case "help":
			fmt.Fprint(s.Out, helpText)
			continue
		case "clear":
			fmt.Fprint(s.Out, "\033[H\033[2J")
			continue
		}

		s.evalLine(trimmed)
	}
}

func (s *Session) evalLine(src string) {
	exprs, err := parser.ParseAll("<repl>", src)
	if err != nil {
		s.printError(err)
		return
	}
	expanded, err := macro.ExpandProgram(exprs, s.Env)
	if err != nil {
		s.printError(err)
		return
	}
	var result value.Value = value.Nil
	for _, e := range expanded {
		result, err = eval.Run(e, s.Env)
		if err != nil {
			s.printError(err)
			return
		}
	}
	if value.IsNil(result) {
		return
	}
	if text, ok := result.(string); ok && strings.HasPrefix(text, "<defined ") {
		return
	}
	s.printResult(result)
}

func (s *Session) printResult(result value.Value) {
	fmt.Fprintln(s.Out, "=>", printer.PrintValue(result))
}

func (s *Session) printError(err error) {
	if lerr, ok := err.(*lerrors.LambdoraError); ok {
		fmt.Fprint(s.Out, lerr.Pretty())
		return
	}
	fmt.Fprintln(s.Out, "Error:", err)
}

// RunFile parses, macro-expands, and evaluates every top-level form in the
// file at path in order against env (which the caller has already
// populated with the built-ins and the prelude), printing
// non-Nil, non-"<defined …>" results to stdout. It returns the first error
// encountered, at which point the file runner should exit nonzero.
func RunFile(path string, env value.Environment) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	exprs, err := parser.ParseAll(path, string(data))
	if err != nil {
		return err
	}
	expanded, err := macro.ExpandProgram(exprs, env)
	if err != nil {
		return err
	}
	for _, e := range expanded {
		result, err := eval.Run(e, env)
		if err != nil {
			return err
		}
		if value.IsNil(result) {
			continue
		}
		if s, ok := result.(string); ok && strings.HasPrefix(s, "<defined ") {
			continue
		}
		fmt.Println(printer.PrintValue(result))
	}
	return nil
}
