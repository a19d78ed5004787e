// Package main provides the ndview demonstration CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:   "ndview",
		Short: "Demonstrations of the nd array library",
	}
	root.AddCommand(newTempsCmd(), newVersionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ndview %s\n", version)
		},
	}
}
