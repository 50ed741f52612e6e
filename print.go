// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jdoc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Print renders a multi-line indented representation of v to w.
func Print(w io.Writer, v Value) error { return PrintIndent(w, v, 0) }

// PrintIndent renders a multi-line representation of v to w as if v were
// nested level deep. Each level of nesting is indented by two spaces.
//
// Each member of an object or element of an array is written on its own line.
// An empty object or array is written as its brackets separated by a blank
// line.
func PrintIndent(w io.Writer, v Value, level int) error {
	bw := bufio.NewWriter(w)
	printValue(bw, v, level)
	return bw.Flush()
}

const indentUnit = "  "

func printValue(w *bufio.Writer, v Value, level int) {
	switch t := v.(type) {
	case String:
		w.WriteByte('"')
		w.WriteString(string(t))
		w.WriteByte('"')
	case Number:
		w.WriteString(string(t))
	case *Object:
		w.WriteString("{\n")
		mdent := strings.Repeat(indentUnit, level+1)
		i := 0
		for key, val := range t.All() {
			if i > 0 {
				w.WriteString(",\n")
			}
			w.WriteString(mdent)
			w.WriteByte('"')
			w.WriteString(key)
			w.WriteString(`": `)
			printValue(w, val, level+1)
			i++
		}
		closeBlock(w, '}', level)
	case Array:
		w.WriteString("[\n")
		adent := strings.Repeat(indentUnit, level+1)
		for i, elt := range t {
			if i > 0 {
				w.WriteString(",\n")
			}
			w.WriteString(adent)
			printValue(w, elt, level+1)
		}
		closeBlock(w, ']', level)
	case True, False, Null:
		w.WriteString(t.Kind().String())
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

func closeBlock(w *bufio.Writer, end byte, level int) {
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(indentUnit, level))
	w.WriteByte(end)
}
