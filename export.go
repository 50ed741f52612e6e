// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import "fmt"

// Serialize renders v as a single line of text. Members and elements are
// separated by ", " and keys from values by ": ". The result can be parsed
// back into an equivalent value.
func Serialize(v Value) string { return string(AppendSerialized(nil, v)) }

// AppendSerialized appends the serialized form of v to buf and returns the
// extended buffer.
func AppendSerialized(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case String:
		buf = append(buf, '"')
		buf = append(buf, string(t)...)
		return append(buf, '"')
	case Number:
		return append(buf, string(t)...)
	case *Object:
		buf = append(buf, '{')
		i := 0
		for key, val := range t.All() {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, '"')
			buf = append(buf, key...)
			buf = append(buf, `": `...)
			buf = AppendSerialized(buf, val)
			i++
		}
		return append(buf, '}')
	case Array:
		buf = append(buf, '[')
		for i, elt := range t {
			if i > 0 {
				buf = append(buf, ", "...)
			}
			buf = AppendSerialized(buf, elt)
		}
		return append(buf, ']')
	case True, False, Null:
		return append(buf, t.Kind().String()...)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
