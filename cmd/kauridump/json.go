package main

import (
	"fmt"
	"strconv"

	"github.com/kauri-engine/kauri/jsonval"
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Parse a JSON document and print its value tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJSON,
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return fmt.Errorf("kauridump: reading input: %w", err)
	}

	v, err := jsonval.Parse(input)
	if err != nil {
		return fmt.Errorf("kauridump: parsing json: %w", err)
	}
	printJSONValue(v, 0)
	return nil
}

func printJSONValue(v jsonval.Value, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch v.Kind {
	case jsonval.NullKind:
		fmt.Println(indent + "null")
	case jsonval.BoolKind:
		fmt.Println(indent + strconv.FormatBool(v.Bool))
	case jsonval.StringKind:
		fmt.Printf("%s%q\n", indent, v.String)
	case jsonval.IntKind:
		fmt.Printf("%s%d (int)\n", indent, v.Int)
	case jsonval.FloatKind:
		fmt.Printf("%s%v (float)\n", indent, v.Float)
	case jsonval.ArrayKind:
		fmt.Println(indent + "[")
		for _, elem := range v.Array {
			printJSONValue(elem, depth+1)
		}
		fmt.Println(indent + "]")
	case jsonval.ObjectKind:
		fmt.Println(indent + "{")
		for _, m := range v.Object.Members {
			fmt.Printf("%s  %q:\n", indent, m.Key)
			printJSONValue(m.Value, depth+2)
		}
		fmt.Println(indent + "}")
	}
}
