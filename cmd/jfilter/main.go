// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jfilter reads a JSON document from standard input and prints it.
// If key names are given as arguments, only the parts of the document
// reachable through object members with those keys are printed.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
