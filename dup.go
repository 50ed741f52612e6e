// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import "fmt"

// Duplicate returns a deep copy of v that shares no structure with it.
// Duplicate(nil) returns nil.
func Duplicate(v Value) Value {
	switch t := v.(type) {
	case nil:
		return nil
	case String, Number, True, False, Null:
		return t // immutable
	case *Object:
		out := &Object{
			keys: make([]string, 0, len(t.keys)),
			vals: make(map[string]Value, len(t.vals)),
		}
		for key, val := range t.All() {
			out.keys = append(out.keys, key)
			out.vals[key] = Duplicate(val)
		}
		return out
	case Array:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = Duplicate(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
