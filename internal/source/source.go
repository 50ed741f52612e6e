// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package source opens document input, transparently decompressing it when it
// is recognized as gzip, zstd, or lz4 data.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Format identifies the encoding of an input stream.
type Format byte

// Constants defining the recognized formats.
const (
	Plain Format = iota // uncompressed text
	Gzip                // gzip (RFC 1952)
	Zstd                // Zstandard frame
	LZ4                 // LZ4 frame
)

var formatStr = [...]string{
	Plain: "plain",
	Gzip:  "gzip",
	Zstd:  "zstd",
	LZ4:   "lz4",
}

func (f Format) String() string {
	if int(f) >= len(formatStr) {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatStr[f]
}

// Magic numbers at the start of each compressed format.
var magic = []struct {
	format Format
	prefix []byte
}{
	{Gzip, []byte{0x1f, 0x8b}},
	{Zstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{LZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

// Detect reports the format of the data buffered in r, without consuming any
// of it. Input too short to hold a magic number is reported as Plain.
func Detect(r *bufio.Reader) Format {
	head, _ := r.Peek(4) // a short read leaves fewer bytes to check
	for _, m := range magic {
		if bytes.HasPrefix(head, m.prefix) {
			return m.format
		}
	}
	return Plain
}

// Open returns a reader for the decoded contents of r along with the format
// that was detected. The caller must close the reader when done with it;
// closing it does not close r.
func Open(r io.Reader) (io.ReadCloser, Format, error) {
	br := bufio.NewReader(r)
	switch f := Detect(br); f {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("open %v input: %w", f, err)
		}
		return zr, f, nil
	case Zstd:
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, f, fmt.Errorf("open %v input: %w", f, err)
		}
		return zr.IOReadCloser(), f, nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(br)), f, nil
	default:
		return io.NopCloser(br), f, nil
	}
}
