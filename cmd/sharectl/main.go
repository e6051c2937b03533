// Command sharectl encodes and decodes comparison share tokens and manages
// the Postgres product catalogue from the command line.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
