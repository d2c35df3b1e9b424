package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/kauri-engine/kauri/htmldom"
	"github.com/kauri-engine/kauri/htmltree"
	"github.com/spf13/cobra"
)

var htmlCmd = &cobra.Command{
	Use:   "html [file]",
	Short: "Parse an HTML document and print the constructed DOM tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHTML,
}

func init() {
	rootCmd.AddCommand(htmlCmd)
}

func runHTML(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("kauridump: reading input: %w", err)
	}

	doc, errs := htmltree.Parse(bytes.NewReader(input), htmltree.Options{IncludeComments: true})
	for _, e := range errs {
		logger.Warn("html parse error", "err", e)
	}
	printHTMLTree(os.Stdout, doc.Root, 0)
	return nil
}

func printHTMLTree(w *os.File, n *htmldom.Node, depth int) {
	if n == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch n.Type {
	case htmldom.DocumentNode:
		fmt.Fprintln(w, indent+"#document")
	case htmldom.DoctypeNode:
		fmt.Fprintf(w, "%s<!DOCTYPE %s>\n", indent, n.DoctypeName)
	case htmldom.ElementNode:
		fmt.Fprintf(w, "%s<%s>\n", indent, n.TagName())
	case htmldom.TextNode:
		fmt.Fprintf(w, "%s%q\n", indent, n.Data)
	case htmldom.CommentNode:
		fmt.Fprintf(w, "%s<!--%s-->\n", indent, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		printHTMLTree(w, c, depth+1)
	}
}
