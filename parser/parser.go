//
// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

// Package parser turns a stream of tokens into the expression tree
// defined by package ast, recognizing the language's special forms along
// the way.
package parser

import (
	"fmt"
	"strings"

	"github.com/ferecci/Lambdora/ast"
	lerrors "github.com/ferecci/Lambdora/errors"
	"github.com/ferecci/Lambdora/token"
)

// Parser is a recursive-descent reader over a channel of tokens.
type Parser struct {
	file  string
	lines []string
	toks  chan token.Token
	cur   token.Token
}

// newParser constructs a Parser over the tokens lexed from src.
func newParser(file, src string) *Parser {
	p := &Parser{
		file:  file,
		lines: strings.Split(src, "\n"),
		toks:  token.Lex(file, src),
	}
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = <-p.toks
}

// snippet returns the source line at 1-based line number, or "" if out
// of range.
func (p *Parser) snippet(line int) string {
	if line < 1 || line > len(p.lines) {
		return ""
	}
	return p.lines[line-1]
}

func (p *Parser) errAt(tok token.Token, format string, args ...interface{}) error {
	pos := lerrors.Position{File: tok.File, Line: tok.Line, Column: tok.Column}
	return lerrors.WithPosition(lerrors.KindParse, fmt.Sprintf(format, args...), pos, p.snippet(tok.Line))
}

// ParseOne parses a single top-level expression, rejecting any trailing
// tokens beyond it.
func ParseOne(file, src string) (ast.Expr, error) {
	p := newParser(file, src)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, p.errAt(p.cur, "unexpected trailing input %q", p.cur.Val)
	}
	return expr, nil
}

// ParseAll parses a sequence of top-level expressions until end of input.
func ParseAll(file, src string) ([]ast.Expr, error) {
	p := newParser(file, src)
	var exprs []ast.Expr
	for p.cur.Type != token.EOF {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// parseExpr parses one expression starting at the current lookahead
// token.
func (p *Parser) parseExpr() (ast.Expr, error) {
	switch p.cur.Type {
	case token.Error:
		pos := lerrors.Position{File: p.cur.File, Line: p.cur.Line, Column: p.cur.Column}
		return nil, lerrors.WithPosition(lerrors.KindTokenize, p.cur.Val, pos, p.snippet(p.cur.Line))
	case token.EOF:
		return nil, p.errAt(p.cur, "unexpected end of input, expected an expression")
	case token.LParen:
		return p.parseList()
	case token.Quote:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.QuoteExpr{Inner: inner}, nil
	case token.Backtick:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.QuasiQuoteExpr{Inner: inner}, nil
	case token.Comma:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnquoteExpr{Inner: inner}, nil
	case token.Integer:
		lit := &ast.Literal{Text: p.cur.Val}
		p.advance()
		return lit, nil
	case token.String:
		text := p.cur.Val
		text = strings.TrimPrefix(text, `"`)
		text = strings.TrimSuffix(text, `"`)
		lit := &ast.Literal{Text: text}
		p.advance()
		return lit, nil
	case token.Identifier:
		name := p.cur.Val
		p.advance()
		return &ast.Variable{Name: name}, nil
	case token.RParen:
		return nil, p.errAt(p.cur, "unexpected ')'")
	case token.Dot:
		return nil, p.errAt(p.cur, "unexpected '.'")
	default:
		return nil, p.errAt(p.cur, "unexpected token %q", p.cur.Val)
	}
}

// parseList parses the body of a parenthesized form, dispatching on the
// leading keyword when one of the special forms is recognized.
func (p *Parser) parseList() (ast.Expr, error) {
	open := p.cur
	p.advance() // consume '('

	if p.cur.Type == token.Identifier {
		switch p.cur.Val {
		case "λ", "lambda":
			return p.parseLambda()
		case "let":
			return p.parseLet()
		case "letrec":
			return p.parseLetrec()
		case "define":
			return p.parseDefine()
		case "if":
			return p.parseIf()
		case "defmacro":
			return p.parseDefMacro()
		case "quote":
			return p.parseQuoteKeyword()
		case "quasiquote":
			return p.parseQuasiQuoteKeyword()
		case "unquote":
			return p.parseUnquoteKeyword()
		}
	}
	return p.parseApplication(open)
}

func (p *Parser) expectRParen(context string) error {
	if p.cur.Type != token.RParen {
		return p.errAt(p.cur, "expected ')' after %s", context)
	}
	p.advance()
	return nil
}

func (p *Parser) parseApplication(open token.Token) (ast.Expr, error) {
	if p.cur.Type == token.RParen {
		return nil, p.errAt(p.cur, "expected an expression, found ')'")
	}
	head, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	for p.cur.Type != token.RParen {
		if p.cur.Type == token.EOF {
			return nil, p.errAt(open, "unterminated application, missing ')'")
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.advance() // consume ')'
	return &ast.Application{Head: head, Args: args}, nil
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	p.advance() // consume 'lambda'/'λ'
	if p.cur.Type != token.Identifier {
		return nil, p.errAt(p.cur, "expected a parameter name after lambda")
	}
	param := p.cur.Val
	p.advance()
	if p.cur.Type != token.Dot {
		return nil, p.errAt(p.cur, "expected '.' after lambda parameter")
	}
	p.advance()
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("lambda body"); err != nil {
		return nil, err
	}
	return &ast.Abstraction{Param: param, Body: body}, nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	p.advance() // consume 'let'
	if p.cur.Type != token.Identifier {
		return nil, p.errAt(p.cur, "expected a variable name after let")
	}
	name := p.cur.Val
	p.advance()
	valueExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	bodyExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("let expression"); err != nil {
		return nil, err
	}
	return &ast.Application{
		Head: &ast.Abstraction{Param: name, Body: bodyExpr},
		Args: []ast.Expr{valueExpr},
	}, nil
}

func (p *Parser) parseLetrec() (ast.Expr, error) {
	p.advance() // consume 'letrec'
	if p.cur.Type != token.LParen {
		return nil, p.errAt(p.cur, "expected '(' to start letrec bindings")
	}
	p.advance() // consume '('

	var bindings []ast.Binding
	for p.cur.Type != token.RParen {
		if p.cur.Type != token.LParen {
			return nil, p.errAt(p.cur, "expected '(' to start a letrec binding")
		}
		p.advance()
		if p.cur.Type != token.Identifier {
			return nil, p.errAt(p.cur, "expected a name in letrec binding")
		}
		name := p.cur.Val
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen("letrec binding"); err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.Binding{Name: name, Expr: rhs})
	}
	p.advance() // consume ')' closing the bindings list

	var body []ast.Expr
	for p.cur.Type != token.RParen {
		if p.cur.Type == token.EOF {
			return nil, p.errAt(p.cur, "unterminated letrec, missing ')'")
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)
	}
	if len(body) == 0 {
		return nil, p.errAt(p.cur, "letrec requires at least one body expression")
	}
	p.advance() // consume ')'
	return &ast.LetRec{Bindings: bindings, Body: body}, nil
}

func (p *Parser) parseDefine() (ast.Expr, error) {
	p.advance() // consume 'define'
	if p.cur.Type != token.Identifier {
		return nil, p.errAt(p.cur, "expected a name after define")
	}
	name := p.cur.Val
	p.advance()
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("define expression"); err != nil {
		return nil, err
	}
	return &ast.DefineExpr{Name: name, Value: value}, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	p.advance() // consume 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("if expression"); err != nil {
		return nil, err
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseDefMacro() (ast.Expr, error) {
	p.advance() // consume 'defmacro'
	if p.cur.Type != token.Identifier {
		return nil, p.errAt(p.cur, "expected a name after defmacro")
	}
	name := p.cur.Val
	p.advance()
	if p.cur.Type != token.LParen {
		return nil, p.errAt(p.cur, "expected '(' to start defmacro parameter list")
	}
	p.advance()
	var params []string
	for p.cur.Type != token.RParen {
		if p.cur.Type != token.Identifier {
			return nil, p.errAt(p.cur, "expected a parameter name in defmacro")
		}
		params = append(params, p.cur.Val)
		p.advance()
	}
	p.advance() // consume ')'
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("defmacro body"); err != nil {
		return nil, err
	}
	return &ast.DefMacroExpr{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseQuoteKeyword() (ast.Expr, error) {
	p.advance() // consume 'quote'
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("quote"); err != nil {
		return nil, err
	}
	return &ast.QuoteExpr{Inner: inner}, nil
}

func (p *Parser) parseQuasiQuoteKeyword() (ast.Expr, error) {
	p.advance() // consume 'quasiquote'
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("quasiquote"); err != nil {
		return nil, err
	}
	return &ast.QuasiQuoteExpr{Inner: inner}, nil
}

func (p *Parser) parseUnquoteKeyword() (ast.Expr, error) {
	p.advance() // consume 'unquote'
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen("unquote"); err != nil {
		return nil, err
	}
	return &ast.UnquoteExpr{Inner: inner}, nil
}
