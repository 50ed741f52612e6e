// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping of text for inclusion in JSON strings.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote returns the escaped form of src, suitable for use as the contents of a
// JSON string. The enclosing quotation marks are not added.
func Quote(src mem.RO) string {
	if !NeedsEscape(src) {
		return src.StringCopy()
	}
	return string(Append(make([]byte, 0, src.Len()+2), src))
}

// NeedsEscape reports whether src contains any character that must be
// escaped to appear inside a JSON string.
func NeedsEscape(src mem.RO) bool {
	for i := 0; i < src.Len(); i++ {
		if b := src.At(i); b < ' ' || b == '"' || b == '\\' || b >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// Append appends the escaped form of src to buf and returns the result.
func Append(buf []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r < utf8.RuneSelf {
			switch {
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					buf = append(buf, '\\', b)
				} else {
					buf = append(buf, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
				}
			case r == '\\' || r == '"':
				buf = append(buf, '\\', byte(r))
			default:
				buf = append(buf, byte(r))
			}
			continue
		}

		switch r {
		case utf8.RuneError:
			buf = append(buf, `\ufffd`...)
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return buf
}
