// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

var (
	_ json.MarshalerTo     = (*Document)(nil)
	_ json.UnmarshalerFrom = (*Document)(nil)
)

// MarshalJSONTo encodes d as a single JSON value. An empty document encodes
// as null. It reports an error if the tree of d does not form valid JSON, as
// can happen with unchecked number text.
func (d *Document) MarshalJSONTo(enc *jsontext.Encoder) error {
	if d.root == nil {
		return enc.WriteToken(jsontext.Null)
	}
	return enc.WriteValue(jsontext.Value(AppendSerialized(nil, d.root)))
}

// UnmarshalJSONFrom decodes a single JSON value into d, replacing its tree.
// Insignificant whitespace is removed before parsing, so the input may use
// any formatting permitted by JSON.
func (d *Document) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	val, err := dec.ReadValue()
	if err != nil {
		return err
	}
	val = val.Clone()
	if err := val.Compact(); err != nil {
		return err
	}
	v, err := Parse(bytes.NewReader(val))
	if err != nil {
		return err
	}
	d.root = v
	return nil
}
