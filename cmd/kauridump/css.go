package main

import (
	"fmt"
	"os"

	"github.com/kauri-engine/kauri/csstok"
	"github.com/spf13/cobra"
)

var cssCmd = &cobra.Command{
	Use:   "css [file]",
	Short: "Tokenize a CSS stylesheet and print the resulting token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
}

func runCSS(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("kauridump: reading input: %w", err)
	}

	tk := csstok.New(input, func(t csstok.Token) {
		fmt.Fprintln(os.Stdout, describeCSSToken(t))
	}, func(e csstok.Error, pos csstok.Position) {
		logger.Warn("css tokenize error", "err", e, "pos", pos)
	})
	tk.Run()
	return nil
}

func describeCSSToken(t csstok.Token) string {
	switch t.Kind {
	case csstok.Ident, csstok.Function, csstok.AtKeyword, csstok.String, csstok.URL:
		return fmt.Sprintf("%s %q", t.Kind, t.Value)
	case csstok.Hash:
		return fmt.Sprintf("%s %q type=%d", t.Kind, t.Value, t.HashType)
	case csstok.Delim:
		return fmt.Sprintf("%s %q", t.Kind, string(t.DelimRune))
	case csstok.Number, csstok.Percentage:
		return fmt.Sprintf("%s %v", t.Kind, t.NumberValue)
	case csstok.Dimension:
		return fmt.Sprintf("%s %v%s", t.Kind, t.NumberValue, t.Unit)
	default:
		return t.Kind.String()
	}
}
