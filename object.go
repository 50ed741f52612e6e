// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"fmt"
	"iter"
	"slices"
)

// An Object is a collection of key-value members that remembers the order in
// which its keys were inserted. Keys are raw string contents, with escapes
// left undecoded. The zero value is not ready for use; call NewObject.
type Object struct {
	keys []string         // insertion order, no duplicates
	vals map[string]Value // len(vals) == len(keys)
}

// NewObject constructs a new empty object.
func NewObject() *Object { return &Object{vals: make(map[string]Value)} }

func (*Object) Kind() Kind { return ObjectKind }
func (*Object) isValue()   {}

// Len reports the number of members in o.
func (o *Object) Len() int { return len(o.keys) }

// Set stores v under key. If key is already present, its previous value is
// replaced and key moves to the end of the order.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.vals[key]; ok {
		o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	}
	o.keys = append(o.keys, key)
	o.vals[key] = v
}

// Get returns the value stored under key, and reports whether it was found.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present in o.
func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// Delete removes key from o, and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.vals[key]; !ok {
		return false
	}
	delete(o.vals, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
	return true
}

// Keys returns a copy of the keys of o in order.
func (o *Object) Keys() []string { return slices.Clone(o.keys) }

// All is a range function over the members of o in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range o.keys {
			if !yield(key, o.vals[key]) {
				return
			}
		}
	}
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", o.Len()) }
