package main

import (
	"fmt"

	kurl "github.com/kauri-engine/kauri/url"
	"github.com/spf13/cobra"
)

var urlBase string

var urlCmd = &cobra.Command{
	Use:   "url <input>",
	Short: "Parse a URL and print its serialized record",
	Args:  cobra.ExactArgs(1),
	RunE:  runURL,
}

func init() {
	urlCmd.Flags().StringVar(&urlBase, "base", "", "base URL to resolve a relative input against")
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	var base *kurl.URL
	if urlBase != "" {
		b, err := kurl.Parse(urlBase, nil)
		if err != nil {
			return fmt.Errorf("kauridump: parsing --base: %w", err)
		}
		base = b
	}

	u, err := kurl.Parse(args[0], base)
	if err != nil {
		return fmt.Errorf("kauridump: parsing url: %w", err)
	}

	fmt.Printf("scheme:   %s\n", u.Scheme)
	if u.IncludesCredentials() {
		fmt.Printf("username: %s\n", u.Username)
		fmt.Printf("password: %s\n", u.Password)
	}
	if u.Port != nil {
		fmt.Printf("port:     %d\n", *u.Port)
	}
	fmt.Printf("path:     %s\n", u.SerializePath())
	if u.Query != nil {
		fmt.Printf("query:    %s\n", *u.Query)
	}
	if u.Fragment != nil {
		fmt.Printf("fragment: %s\n", *u.Fragment)
	}
	fmt.Printf("serialized: %s\n", u.Serialize(false))
	fmt.Printf("origin:     %s\n", u.Origin().Serialize())
	return nil
}
