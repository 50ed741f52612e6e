// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/internal/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tailscale/hujson"
)

type options struct {
	compact   bool // print the serialized form
	normalize bool // rewrite the input as minimal standard JSON first
	loose     bool // skip literal text without checking it
	quiet     bool // omit the filter banner
	verbose   bool // log debug details
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "jfilter [key...]",
		Short: "Print or filter a JSON document read from standard input",
		Long: `Read a JSON document from standard input and print it.

With no arguments, the whole document is printed. Otherwise, each argument
names an object key, and only the members with those keys (found at any
depth) are printed, along with the objects and arrays that contain them.

Input compressed with gzip, zstd, or lz4 is decompressed automatically.
Malformed input is reported and printed as null.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.compact, "compact", "c", false, "print the document on a single line")
	flags.BoolVarP(&opts.normalize, "normalize", "n", false,
		"accept comments, trailing commas, and any whitespace in the input")
	flags.BoolVar(&opts.loose, "loose-literals", false, "do not check the spelling of true, false, and null")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the list of filter keys")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log details about the input")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func run(in io.Reader, out io.Writer, keys []string, opts options) error {
	log := newLogger(out, opts.verbose)

	doc := readDocument(log, in, opts)
	if len(keys) != 0 {
		if !opts.quiet {
			fmt.Fprintf(out, "Filtering JSON document for the following key values:\n\t%s\n",
				strings.Join(keys, "    "))
		}
		doc = doc.Filter(keys...)
		log.WithField("keys", keys).Debugf("Filter matched: %v", !doc.IsEmpty())
	}

	if opts.compact && !doc.IsEmpty() {
		_, err := fmt.Fprintln(out, doc.Serialize())
		return err
	} else if opts.compact {
		_, err := fmt.Fprintln(out, "null")
		return err
	}
	if err := doc.Print(out); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

// readDocument reads a document from in. Any problem with the input is logged
// and yields a document holding null.
func readDocument(log *logrus.Logger, in io.Reader, opts options) *jdoc.Document {
	rc, format, err := source.Open(in)
	if err != nil {
		log.WithError(err).Error("Unable to read input.")
		return jdoc.NewDocument(jdoc.Null{})
	}
	defer rc.Close()
	log.WithField("format", format).Debug("Opened input")

	var r io.Reader = rc
	if opts.normalize {
		data, err := io.ReadAll(rc)
		if err != nil {
			log.WithError(err).Error("Unable to read input.")
			return jdoc.NewDocument(jdoc.Null{})
		}
		v, err := hujson.Parse(data)
		if err != nil {
			log.WithError(err).Error("Unable to parse input.")
			return jdoc.NewDocument(jdoc.Null{})
		}
		v.Standardize()
		v.Minimize()
		r = bytes.NewReader(v.Pack())
		log.WithField("bytes", len(data)).Debug("Normalized input")
	}

	p := jdoc.NewParser(r)
	p.LooseLiterals(opts.loose)
	doc, err := jdoc.ParseDocumentWith(p)
	if err != nil {
		log.WithError(err).Error("Unable to parse input.")
	}
	return doc
}
