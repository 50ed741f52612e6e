// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jdoc"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, input string) jdoc.Value {
	t.Helper()
	v, err := jdoc.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", input, err)
	}
	return v
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		kind  jdoc.Kind
		want  string
	}{
		// Constants
		{"true", jdoc.TrueKind, "true"},
		{"false", jdoc.FalseKind, "false"},
		{"null", jdoc.NullKind, "null"},
		{"   null", jdoc.NullKind, "null"},

		// Strings, with escapes kept verbatim
		{`""`, jdoc.StringKind, `""`},
		{`"a b c"`, jdoc.StringKind, `"a b c"`},
		{`"a\"b"`, jdoc.StringKind, `"a\"b"`},
		{`"a\\"`, jdoc.StringKind, `"a\\"`},
		{`"\u00e9\n\t"`, jdoc.StringKind, `"\u00e9\n\t"`},
		{"\"tab\there\"", jdoc.StringKind, "\"tab\there\""},

		// Numbers, kept as raw text
		{"0", jdoc.NumberKind, "0"},
		{"-15", jdoc.NumberKind, "-15"},
		{"-0.5e+3", jdoc.NumberKind, "-0.5e+3"},
		{"42 and then some", jdoc.NumberKind, "42"},
		{"0x1f", jdoc.NumberKind, "0x1f"},

		// Arrays
		{"[]", jdoc.ArrayKind, "[]"},
		{"[ ]", jdoc.ArrayKind, "[]"},
		{`[1, "x" , true,false,null]`, jdoc.ArrayKind, `[1, "x", true, false, null]`},
		{"[[[]]]", jdoc.ArrayKind, "[[[]]]"},
		{"[1,2,]", jdoc.ArrayKind, "[1, 2]"},

		// Objects
		{"{}", jdoc.ObjectKind, "{}"},
		{"{ }", jdoc.ObjectKind, "{}"},
		{`{"a":1,"b":2,"c":3}`, jdoc.ObjectKind, `{"a": 1, "b": 2, "c": 3}`},
		{`{"a":1,"b":2,"a":3}`, jdoc.ObjectKind, `{"b": 2, "a": 3}`},
		{`{ "k" : [ {"x" : null} ] }`, jdoc.ObjectKind, `{"k": [{"x": null}]}`},
		{`{"a":1,}`, jdoc.ObjectKind, `{"a": 1}`},
		{`{"q\"k":"v"}`, jdoc.ObjectKind, `{"q\"k": "v"}`},

		// Trailing input is ignored.
		{`{"a":true} {"b":false}`, jdoc.ObjectKind, `{"a": true}`},
	}
	for _, test := range tests {
		v := mustParse(t, test.input)
		if got := v.Kind(); got != test.kind {
			t.Errorf("Parse %#q: got kind %v, want %v", test.input, got, test.kind)
		}
		if got := jdoc.Serialize(v); got != test.want {
			t.Errorf("Parse %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestParseOrder(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":2,"c":3}`)
	obj, ok := v.(*jdoc.Object)
	if !ok {
		t.Fatalf("Parse: got %T, want object", v)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}

	v = mustParse(t, `{"a":1,"b":2,"a":3}`)
	obj = v.(*jdoc.Object)
	if diff := cmp.Diff([]string{"b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("Keys after overwrite (-want, +got):\n%s", diff)
	}
	if a, ok := obj.Get("a"); !ok || a != jdoc.Number("3") {
		t.Errorf(`Get("a"): got %v, %v; want 3, true`, a, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string // error text
		eof   bool   // whether the error should wrap io.ErrUnexpectedEOF
	}{
		{"", `at 1:0: expected value, got end of input`, true},
		{"   ", `at 1:3: expected value, got end of input`, true},
		{`{"a":1`, `at 1:6: expected "," or "}", got end of input`, true},
		{`{"a":`, `at 1:5: expected value, got end of input`, true},
		{`{"a"`, `at 1:4: expected ':', got end of input`, true},
		{`{`, `at 1:1: expected string key, got end of input`, true},
		{`[1,`, `at 1:3: expected value, got end of input`, true},
		{`[1`, `at 1:2: expected "," or "]", got end of input`, true},
		{`"abc`, `at 1:4: unterminated string, got end of input`, true},
		{`"abc\`, `at 1:5: incomplete escape, got end of input`, true},
		{"nul", `at 1:3: incomplete null, got end of input`, true},

		{`{1:2}`, `at 1:1: object key must be a string, got '1'`, false},
		{`{"a" 1}`, `at 1:5: expected ':', got '1'`, false},
		{`[1 2]`, `at 1:3: expected "," or "]", got '2'`, false},
		{`{"a":1 "b":2}`, `at 1:7: expected "," or "}", got '"'`, false},
		{`[,]`, `at 1:1: unexpected ','`, false},
		{`{"a":}`, `at 1:5: unexpected '}'`, false},
		{"tru3", `at 1:0: unknown constant "tru3"`, false},
		{"[nope]", `at 1:1: unknown constant "nope"`, false},
		{"{\"a\":1,\n\"b\":2}", `at 1:7: object key must be a string, got '\n'`, false},
		{"\"ab\ncd", `at 2:2: unterminated string, got end of input`, true},
	}
	for _, test := range tests {
		v, err := jdoc.Parse(strings.NewReader(test.input))
		if err == nil {
			t.Errorf("Parse %#q: got %v, want error", test.input, v)
			continue
		}
		if v != nil {
			t.Errorf("Parse %#q: got partial value %v, want nil", test.input, v)
		}
		var serr *jdoc.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse %#q: got error %T, want *SyntaxError", test.input, err)
		}
		if got := err.Error(); got != test.want {
			t.Errorf("Parse %#q: got error %q, want %q", test.input, got, test.want)
		}
		if got := errors.Is(err, io.ErrUnexpectedEOF); got != test.eof {
			t.Errorf("Parse %#q: unexpected EOF is %v, want %v", test.input, got, test.eof)
		}
	}
}

func TestSyntaxErrorSpan(t *testing.T) {
	_, err := jdoc.Parse(strings.NewReader(`[true, fals3]`))
	var serr *jdoc.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("Parse: got %v, want *SyntaxError", err)
	}
	want := jdoc.Span{Pos: 7, End: 12}
	if diff := cmp.Diff(want, serr.Span); diff != "" {
		t.Errorf("Span (-want, +got):\n%s", diff)
	}
	if want := (jdoc.LineCol{Line: 1, Column: 7}); serr.Location != want {
		t.Errorf("Location: got %v, want %v", serr.Location, want)
	}
}

func TestParseReadError(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(strings.NewReader(`{"a": [1, `), iotest.ErrReader(errBoom))

	v, err := jdoc.Parse(r)
	if !errors.Is(err, errBoom) {
		t.Fatalf("Parse: got %v, %v; want %v", v, err, errBoom)
	}
	var serr *jdoc.SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("Parse: got error %T, want *SyntaxError", err)
	}
}

func TestLooseLiterals(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"[tru3, fals_, nulL]", "[true, false, null]"},
		{`{"x":tXXX}`, `{"x": true}`},
		{"true", "true"},
		{"tr", "true"},
	}
	for _, test := range tests {
		p := jdoc.NewParser(strings.NewReader(test.input))
		p.LooseLiterals(true)
		v, err := p.Parse()
		if err != nil {
			t.Errorf("Parse %#q: unexpected error: %v", test.input, err)
			continue
		}
		if got := jdoc.Serialize(v); got != test.want {
			t.Errorf("Parse %#q: got %#q, want %#q", test.input, got, test.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`"a\"b\\c\u0041"`,
		`[1, -2.5e10, "x", [], {}, [[true]]]`,
		`{"a":1,"b":{"c":[false,null,{"d":"e"}]},"f":[]}`,
		`{"z":1,"y":2,"z":3}`,
		`{"list":[{"x":1},{"x":2}],"y":{"hello":"there"}}`,
	}
	for _, input := range inputs {
		first := jdoc.Serialize(mustParse(t, input))
		second := jdoc.Serialize(mustParse(t, first))
		if first != second {
			t.Errorf("Round trip %#q:\nfirst:  %s\nsecond: %s", input, first, second)
		}
	}
}
