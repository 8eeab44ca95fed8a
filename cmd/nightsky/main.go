// Command nightsky animates a night sky in the terminal or a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/litescript/nightsky/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
