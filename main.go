package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/connectfour-backend/internal/cli"
)

// main - is the entry point of the application. The root command loads the configuration and logger before running a subcommand.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cli.Execute()
}
