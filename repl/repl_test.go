//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferecci/Lambdora/builtins"
	"github.com/ferecci/Lambdora/internal/prelude"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	env := builtins.NewTopEnv()
	require.NoError(t, prelude.Load(env))
	var out bytes.Buffer
	s := &Session{Env: env, History: NewHistory(Config{}), Out: &out}
	return s, &out
}

func TestReplEchoesArithmeticResult(t *testing.T) {
	s, out := newTestSession(t)
	s.Run(strings.NewReader("(+ 1 2)\nexit\n"))
	assert.Contains(t, out.String(), "=> 3")
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestReplSuppressesDefinedMarker(t *testing.T) {
	s, out := newTestSession(t)
	s.Run(strings.NewReader("(define x 5)\nexit\n"))
	assert.NotContains(t, out.String(), "<defined")
}

func TestReplPrintsPrettyErrorAndContinues(t *testing.T) {
	s, out := newTestSession(t)
	s.Run(strings.NewReader("(+ 1\nx\nexit\n"))
	assert.Contains(t, out.String(), "ParseError")
	assert.Contains(t, out.String(), "EvalError")
}

func TestReplHelpAndClear(t *testing.T) {
	s, out := newTestSession(t)
	s.Run(strings.NewReader("help\nclear\nexit\n"))
	assert.Contains(t, out.String(), "syntax cheat sheet")
	assert.Contains(t, out.String(), "\033[H\033[2J")
}

func TestRunFileEvaluatesSequentially(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lamb")
	require.NoError(t, os.WriteFile(path, []byte("(define x 5)\n(* x x)\n"), 0o644))

	env := builtins.NewTopEnv()
	require.NoError(t, prelude.Load(env))
	require.NoError(t, RunFile(path, env))
}

func TestConfigFromEnvDefaults(t *testing.T) {
	os.Unsetenv("LAMBDORA_HISTORY_SIZE")
	os.Unsetenv("LAMBDORA_HISTORY_FILE")
	cfg := ConfigFromEnv()
	assert.Equal(t, defaultHistorySize, cfg.HistorySize)
}
