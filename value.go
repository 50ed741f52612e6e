// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"fmt"
	"strconv"

	"github.com/creachadair/jdoc/internal/escape"
	"go4.org/mem"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // not a valid value
	StringKind             // quoted string
	NumberKind             // number, kept as raw text
	ObjectKind             // object: { "key": value, ... }
	ArrayKind              // array: [ value, ... ]
	TrueKind               // constant: true
	FalseKind              // constant: false
	NullKind               // constant: null
)

var kindStr = [...]string{
	Invalid:    "invalid",
	StringKind: "string",
	NumberKind: "number",
	ObjectKind: "object",
	ArrayKind:  "array",
	TrueKind:   "true",
	FalseKind:  "false",
	NullKind:   "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[k]
}

// A Value is a node in a document tree. The concrete type is one of String,
// Number, *Object, Array, True, False, or Null. The set of variants is closed.
//
// Values carry no behavior beyond reporting their kind; the operations on a
// tree (Print, Serialize, Duplicate, Filter) are functions that switch over
// the concrete type.
type Value interface {
	Kind() Kind

	isValue()
}

// A String is a string value. Its contents are the raw characters between the
// quotation marks in the source, with escape sequences left undecoded.
type String string

func (String) Kind() Kind { return StringKind }
func (String) isValue()   {}

// NewString returns a String for the plain text s, escaping any characters
// that may not appear literally inside a JSON string.
func NewString(s string) String { return String(escape.Quote(mem.S(s))) }

// A Number is a numeric value, kept as its exact source text.
// The text is not checked for numeric syntax.
type Number string

func (Number) Kind() Kind { return NumberKind }
func (Number) isValue()   {}

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }
func (Array) isValue()   {}

// True represents the constant true.
type True struct{}

func (True) Kind() Kind { return TrueKind }
func (True) isValue()   {}

// False represents the constant false.
type False struct{}

func (False) Kind() Kind { return FalseKind }
func (False) isValue()   {}

// Null represents the constant null.
type Null struct{}

func (Null) Kind() Kind { return NullKind }
func (Null) isValue()   {}

// Bool returns True if ok is true, otherwise False.
func Bool(ok bool) Value {
	if ok {
		return True{}
	}
	return False{}
}

// ToValue converts a string, int, float, bool, nil, or Value into a Value.
// Strings are escaped as by NewString. It panics if v does not have one of
// those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case string:
		return NewString(t)
	case int:
		return Number(strconv.Itoa(t))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
