// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// A Document is the owner of a value tree. A Document may be empty, meaning
// it has no tree at all; the zero value is an empty Document ready for use.
//
// No two documents share any part of a tree: every operation that builds one
// document from another copies the tree it hands over. A Document is not safe
// for concurrent use without external synchronization.
type Document struct {
	root Value
}

// New constructs an empty document.
func New() *Document { return new(Document) }

// NewDocument constructs a document that takes ownership of v. The caller
// must not retain v for use elsewhere; use Duplicate to keep a copy.
// If v == nil the document is empty.
func NewDocument(v Value) *Document { return &Document{root: v} }

// ParseDocument parses a single value from r and returns a document that owns
// it. ParseDocument always returns a non-nil document. If the input is
// malformed, the document holds a single null value and the error describes
// the problem.
func ParseDocument(r io.Reader) (*Document, error) { return ParseDocumentWith(NewParser(r)) }

// ParseDocumentWith is as ParseDocument, but reads the value from p.
func ParseDocumentWith(p *Parser) (*Document, error) {
	v, err := p.Parse()
	if err != nil {
		return &Document{root: Null{}}, err
	}
	return &Document{root: v}, nil
}

// Root returns the root of d's tree, or nil if d is empty. The tree remains
// owned by d; callers that need to keep it should Duplicate it.
func (d *Document) Root() Value { return d.root }

// IsEmpty reports whether d has no tree.
func (d *Document) IsEmpty() bool { return d.root == nil }

// Set replaces the tree of d with v, taking ownership of v.
// Set(nil) is equivalent to Reset.
func (d *Document) Set(v Value) { d.root = v }

// Reset discards the tree of d, leaving it empty.
func (d *Document) Reset() { d.root = nil }

// CopyFrom replaces the tree of d with a copy of the tree of src.
func (d *Document) CopyFrom(src *Document) {
	if d != src {
		d.root = Duplicate(src.root)
	}
}

// Print writes a multi-line indented rendering of d to w.
// An empty document is written as null.
func (d *Document) Print(w io.Writer) error {
	if d.root == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	return Print(w, d.root)
}

// Serialize returns a single-line rendering of d.
// An empty document yields an empty string.
func (d *Document) Serialize() string {
	if d.root == nil {
		return ""
	}
	return Serialize(d.root)
}

// String returns the serialized form of d.
func (d *Document) String() string { return d.Serialize() }

// Filter returns a new document containing the subset of d reachable through
// object members whose key is one of keys. If nothing matches, the result is
// empty. See the package-level Filter function for details.
func (d *Document) Filter(keys ...string) *Document {
	return &Document{root: Filter(d.root, keys...)}
}

// Duplicate returns a new document holding a copy of the tree of d.
func (d *Document) Duplicate() *Document { return &Document{root: Duplicate(d.root)} }

// Fingerprint returns a 64-bit hash of the serialized form of d. Documents
// that serialize identically have equal fingerprints.
func (d *Document) Fingerprint() uint64 {
	if d.root == nil {
		return xxhash.Sum64(nil)
	}
	return xxhash.Sum64(AppendSerialized(nil, d.root))
}
