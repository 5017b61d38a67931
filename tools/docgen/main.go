// Command docgen writes the sdp CLI reference from the cobra command tree.
//
//	go run ./tools/docgen -format man -output docs/man
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/social-data-provider/cmd/sdp/cmd"
)

func main() {
	format := flag.String("format", "markdown", "output format: markdown, man or yaml")
	output := flag.String("output", "docs/cli", "directory the reference is written to")
	flag.Parse()

	if err := run(cmd.Root(), *format, *output); err != nil {
		fmt.Fprintln(os.Stderr, "docgen:", err)
		os.Exit(1)
	}
	fmt.Printf("%s reference written to %s/\n", *format, *output)
}

func run(root *cobra.Command, format, dir string) error {
	root.DisableAutoGenTag = true

	var gen func() error
	switch format {
	case "markdown", "md":
		gen = func() error { return doc.GenMarkdownTree(root, dir) }
	case "man":
		gen = func() error {
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "SDP",
				Section: "1",
				Source:  "social-data-provider " + cmd.Version,
			}, dir)
		}
	case "yaml":
		gen = func() error { return doc.GenYamlTree(root, dir) }
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := gen(); err != nil {
		return fmt.Errorf("generating %s docs: %w", format, err)
	}
	return nil
}
