// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jdoc implements a JSON document model with a parser and a small set
// of structural operations over the resulting value trees.
//
// # Parsing
//
// Call Parse to read a single value from an io.Reader. In case of error, the
// returned error has concrete type *jdoc.SyntaxError and no partial value is
// returned:
//
//	v, err := jdoc.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The parser accepts a relaxed dialect of JSON: only the ASCII space is
// skipped between tokens, numbers are kept as raw unchecked text, and string
// escapes are preserved as written rather than decoded. Use a Parser directly
// to adjust its settings:
//
//	p := jdoc.NewParser(input)
//	p.LooseLiterals(true)
//	v, err := p.Parse()
//
// # Values
//
// A Value is one of seven concrete types:
//
//	JSON type | Go type  | Contents
//	--------- | -------- | -----------------------------------------
//	string    | String   | raw text between the quotes
//	number    | Number   | raw source text
//	object    | *Object  | members in insertion order
//	array     | Array    | elements in order
//	true      | True     | --
//	false     | False    | --
//	null      | Null     | --
//
// Setting an existing key in an Object replaces its value and moves the key
// to the end of the insertion order, so that parsing {"a":1,"b":2,"a":3}
// yields the keys b, a with a = 3.
//
// # Operations
//
// The functions Print, Serialize, Duplicate, and Filter each walk a value
// tree. Print writes an indented multi-line rendering, Serialize a compact
// single-line rendering that the parser accepts, Duplicate a deep copy, and
// Filter the subset of a tree reachable through a given set of object keys.
//
// # Documents
//
// A Document owns a value tree and exposes the same operations. Documents
// never share structure: Filter and Duplicate return documents with trees of
// their own. ParseDocument reports an error for malformed input, but still
// returns a document holding a single null value:
//
//	d, err := jdoc.ParseDocument(os.Stdin)
//	if err != nil {
//	   log.Printf("Unable to parse input: %v", err)
//	}
//	d.Filter("name", "id").Print(os.Stdout)
package jdoc
