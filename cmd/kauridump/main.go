// Command kauridump exercises kauri's parser packages from the command
// line: it reads a file (or stdin) and dumps the resulting token
// stream, DOM tree, URL record, or JSON value to stdout. It performs
// no logic the library packages don't already own.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "kauridump",
	Short: "Dump the output of kauri's HTML, CSS, URL, and JSON parsers",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readInput reads the file named by args[0], or stdin when no file is
// given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
