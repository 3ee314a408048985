// main is the entry point for the shootings CLI.
package main

import (
	"fmt"
	"os"

	"github.com/angela-xuanye/MSDS-Colorado/cmd"
	"github.com/angela-xuanye/MSDS-Colorado/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		iocache.CloseCaching()
		os.Exit(1)
	}
}
