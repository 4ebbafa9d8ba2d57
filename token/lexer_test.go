//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	var toks []Token
	for tok := range Lex("test", input) {
		toks = append(toks, tok)
		if tok.Type == EOF || tok.Type == Error {
			break
		}
	}
	return toks
}

func TestLexParensAndAtoms(t *testing.T) {
	toks := collect(t, "(+ 1 2)")
	require.Len(t, toks, 6)
	assert.Equal(t, LParen, toks[0].Type)
	assert.Equal(t, Identifier, toks[1].Type)
	assert.Equal(t, "+", toks[1].Val)
	assert.Equal(t, Integer, toks[2].Type)
	assert.Equal(t, "1", toks[2].Val)
	assert.Equal(t, Integer, toks[3].Type)
	assert.Equal(t, RParen, toks[4].Type)
	assert.Equal(t, EOF, toks[5].Type)
}

func TestLexMultiCharOperators(t *testing.T) {
	for _, op := range []string{"++", "!=", "<=", ">="} {
		toks := collect(t, op)
		require.Len(t, toks, 2)
		assert.Equal(t, Identifier, toks[0].Type)
		assert.Equal(t, op, toks[0].Val)
	}
}

func TestLexBangAloneIsError(t *testing.T) {
	toks := collect(t, "!")
	require.Len(t, toks, 1)
	assert.Equal(t, Error, toks[0].Type)
}

func TestLexComment(t *testing.T) {
	toks := collect(t, "1 ; a comment\n2")
	require.Len(t, toks, 3)
	assert.Equal(t, "1", toks[0].Val)
	assert.Equal(t, "2", toks[1].Val)
}

func TestLexString(t *testing.T) {
	toks := collect(t, `"hello world"`)
	require.Len(t, toks, 2)
	assert.Equal(t, String, toks[0].Type)
	assert.Equal(t, `"hello world"`, toks[0].Val)
}

func TestLexUnterminatedStringPointsAtOpenQuote(t *testing.T) {
	toks := collect(t, `  "hello`)
	require.Len(t, toks, 1)
	assert.Equal(t, Error, toks[0].Type)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 3, toks[0].Column)
}

func TestLexLambdaSymbol(t *testing.T) {
	toks := collect(t, "λ")
	require.Len(t, toks, 2)
	assert.Equal(t, Identifier, toks[0].Type)
	assert.Equal(t, "λ", toks[0].Val)
}

func TestLexIdentifierWithQuestionMark(t *testing.T) {
	toks := collect(t, "isZero?")
	require.Len(t, toks, 2)
	assert.Equal(t, Identifier, toks[0].Type)
	assert.Equal(t, "isZero?", toks[0].Val)
}

func TestLexNewlineInsideStringAdvancesLine(t *testing.T) {
	toks := collect(t, "\"a\nb\" 1")
	require.Len(t, toks, 3)
	assert.Equal(t, String, toks[0].Type)
	assert.Equal(t, Integer, toks[1].Type)
	assert.Equal(t, 2, toks[1].Line)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	toks := collect(t, "@")
	require.Len(t, toks, 1)
	assert.Equal(t, Error, toks[0].Type)
}
