// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"fmt"

	"github.com/creachadair/mds/mapset"
)

// Filter returns the subset of v reachable through object members whose keys
// are in keys, or nil if there is no such member anywhere in v.
//
// A member whose key matches is kept with its whole value. Any other member
// is kept only if its value has a matching member somewhere inside it, and
// then only with the matching parts of that value. Array elements with no
// match are dropped and the survivors keep their relative order. Scalar
// values never match on their own.
//
// The result shares no structure with v.
func Filter(v Value, keys ...string) Value {
	if v == nil {
		return nil
	}
	return Duplicate(filterValue(v, mapset.New(keys...)))
}

// filterValue returns the filtered subset of v, or nil. The result may share
// structure with v.
func filterValue(v Value, keys mapset.Set[string]) Value {
	switch t := v.(type) {
	case String, Number, True, False, Null:
		return nil
	case *Object:
		var out *Object
		for key, val := range t.All() {
			if !keys.Has(key) {
				if val = filterValue(val, keys); val == nil {
					continue
				}
			}
			if out == nil {
				out = NewObject()
			}
			out.Set(key, val)
		}
		if out == nil {
			return nil // avoid a typed nil
		}
		return out
	case Array:
		var out Array
		for _, elt := range t {
			if sub := filterValue(elt, keys); sub != nil {
				out = append(out, sub)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
