// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// Parse parses a single value from the front of r. Any input following the
// value is left unread. In case of error, Parse returns a nil Value and an
// error of concrete type [*SyntaxError].
func Parse(r io.Reader) (Value, error) { return NewParser(r).Parse() }

// A Parser is a recursive-descent parser for JSON values.
//
// The parser accepts a slightly relaxed dialect of JSON. Only the ASCII space
// character is treated as whitespace between tokens; tabs and line breaks are
// not skipped. Numbers are kept as raw text without validation. A comma
// directly before the closing bracket of an object or array is accepted.
type Parser struct {
	r     *bufio.Reader
	loose bool // skip literal text without checking it

	end     int  // offset of the next unread byte
	line    int  // current line, 0-based
	col     int  // current column, 0-based
	last    int  // size in bytes of the last-read rune, 0 if none
	lastCol int  // column before the last-read rune
	lastNL  bool // whether the last-read rune was a newline
}

// NewParser constructs a new parser that consumes input from r.
func NewParser(r io.Reader) *Parser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Parser{r: br}
}

// LooseLiterals configures the parser to check (false) or skip (true) the
// text of the constants true, false, and null. When enabled, the parser
// recognizes each constant by its first letter and discards the rest of its
// length unexamined, so that "tru3" parses as true. By default the full text
// must match.
func (p *Parser) LooseLiterals(ok bool) { p.loose = ok }

// Parse parses a single value from the input. In case of error, the partial
// result is discarded and the error has concrete type [*SyntaxError].
func (p *Parser) Parse() (_ Value, err error) {
	defer p.recoverParseError(&err)
	return p.parseValue(), nil
}

func (p *Parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		serr, ok := perr.(*SyntaxError)
		if !ok {
			panic(perr)
		}
		*errp = serr
	}
}

// parseValue consumes a single value of any type.
func (p *Parser) parseValue() Value {
	p.skipSpaces()
	ch, ok := p.peek()
	if !ok {
		p.failEOF("expected value")
	}
	switch ch {
	case '"':
		return p.parseString()
	case '{':
		return p.parseObject()
	case '[':
		return p.parseArray()
	case 't':
		p.parseLiteral("true")
		return True{}
	case 'f':
		p.parseLiteral("false")
		return False{}
	case 'n':
		p.parseLiteral("null")
		return Null{}
	default:
		return p.parseNumber()
	}
}

// parseString consumes a quoted string.
// Precondition: next rune == '"'.
func (p *Parser) parseString() String {
	p.rune() // opening quote

	var sb strings.Builder
	for {
		ch, ok := p.rune()
		if !ok {
			p.failEOF("unterminated string")
		} else if ch == '"' {
			return String(sb.String())
		}
		sb.WriteRune(ch)

		// Keep escapes as written, including the escaped rune.
		if ch == '\\' {
			next, ok := p.rune()
			if !ok {
				p.failEOF("incomplete escape")
			}
			sb.WriteRune(next)
		}
	}
}

// parseObject consumes an object and its members.
// Precondition: next rune == '{'.
func (p *Parser) parseObject() *Object {
	p.rune() // open brace

	obj := NewObject()
	p.skipSpaces()
	if p.accept('}') {
		return obj
	}
	for {
		p.skipSpaces()
		if ch, ok := p.peek(); !ok {
			p.failEOF("expected string key")
		} else if ch != '"' {
			p.fail(nil, "object key must be a string, got %q", ch)
		}
		key := p.parseString()

		p.skipSpaces()
		p.require(':')
		obj.Set(string(key), p.parseValue())

		p.skipSpaces()
		ch, ok := p.rune()
		if !ok {
			p.failEOF(`expected "," or "}"`)
		}
		switch ch {
		case '}':
			return obj
		case ',':
			p.skipSpaces()
			if p.accept('}') {
				return obj // trailing comma
			}
		default:
			p.unrune()
			p.fail(nil, `expected "," or "}", got %q`, ch)
		}
	}
}

// parseArray consumes an array and its elements.
// Precondition: next rune == '['.
func (p *Parser) parseArray() Array {
	p.rune() // open bracket

	arr := Array{}
	p.skipSpaces()
	if p.accept(']') {
		return arr
	}
	for {
		arr = append(arr, p.parseValue())

		p.skipSpaces()
		ch, ok := p.rune()
		if !ok {
			p.failEOF(`expected "," or "]"`)
		}
		switch ch {
		case ']':
			return arr
		case ',':
			p.skipSpaces()
			if p.accept(']') {
				return arr // trailing comma
			}
		default:
			p.unrune()
			p.fail(nil, `expected "," or "]", got %q`, ch)
		}
	}
}

// parseLiteral consumes exactly as many runes as word contains.
// Unless loose literals are enabled, they must spell out word.
func (p *Parser) parseLiteral(word string) {
	pos, lc := p.end, p.lineCol()
	buf := make([]byte, 0, len(word))
	for range utf8.RuneCountInString(word) {
		ch, ok := p.rune()
		if !ok {
			if p.loose {
				return
			}
			p.failEOF("incomplete " + word)
		}
		buf = utf8.AppendRune(buf, ch)
	}
	if !p.loose && !mem.B(buf).Equal(mem.S(word)) {
		panic(&SyntaxError{
			Location: lc,
			Span:     Span{Pos: pos, End: p.end},
			Message:  fmt.Sprintf("unknown constant %q", buf),
		})
	}
}

// parseNumber consumes raw number text up to the next delimiter or the end of
// the input. The delimiter is not consumed.
func (p *Parser) parseNumber() Number {
	var sb strings.Builder
	for {
		ch, ok := p.rune()
		if !ok {
			break
		} else if isNumEnd(ch) {
			p.unrune()
			if sb.Len() == 0 {
				p.fail(nil, "unexpected %q", ch)
			}
			break
		}
		sb.WriteRune(ch)
	}
	if sb.Len() == 0 {
		p.failEOF("expected value")
	}
	return Number(sb.String())
}

func (p *Parser) skipSpaces() {
	for {
		ch, ok := p.rune()
		if !ok {
			return
		} else if ch != ' ' {
			p.unrune()
			return
		}
	}
}

// accept consumes the next rune if it is want, and reports whether it did.
func (p *Parser) accept(want rune) bool {
	ch, ok := p.rune()
	if ok && ch != want {
		p.unrune()
		return false
	}
	return ok
}

// require consumes the next rune, which must be want.
func (p *Parser) require(want rune) {
	ch, ok := p.rune()
	if !ok {
		p.failEOF(fmt.Sprintf("expected %q", want))
	} else if ch != want {
		p.unrune()
		p.fail(nil, "expected %q, got %q", want, ch)
	}
}

func (p *Parser) peek() (rune, bool) {
	ch, ok := p.rune()
	if ok {
		p.unrune()
	}
	return ch, ok
}

// rune reads the next rune of input. It reports false at the end of input.
// A read error other than io.EOF aborts the parse.
func (p *Parser) rune() (rune, bool) {
	ch, nb, err := p.r.ReadRune()
	if err == io.EOF {
		p.last = 0
		return 0, false
	} else if err != nil {
		p.last = 0
		p.fail(err, "read failed: %v", err)
	}
	p.last, p.lastCol, p.lastNL = nb, p.col, ch == '\n'
	p.end += nb
	if ch == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col += nb
	}
	return ch, true
}

// unrune pushes back the last-read rune. At most one rune can be pushed back.
func (p *Parser) unrune() {
	if p.last == 0 {
		return
	}
	p.end -= p.last
	if p.lastNL {
		p.line--
	}
	p.col = p.lastCol
	p.last = 0
	p.r.UnreadRune()
}

func (p *Parser) lineCol() LineCol { return LineCol{Line: p.line + 1, Column: p.col} }

func (p *Parser) fail(err error, msg string, args ...any) {
	panic(&SyntaxError{
		Location: p.lineCol(),
		Span:     Span{Pos: p.end, End: p.end},
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

func (p *Parser) failEOF(what string) {
	p.fail(io.ErrUnexpectedEOF, "%s, got end of input", what)
}

func isNumEnd(ch rune) bool { return ch == ' ' || ch == ',' || ch == '}' || ch == ']' }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Location LineCol // where the error was detected
	Span     Span    // the offending input, empty if none was consumed
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
