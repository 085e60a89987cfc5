// Command neoq explores close approaches of near-Earth objects.
//
// It loads the NEO CSV and close-approach JSON datasets, links them into an
// in-memory database, and answers filtered queries from the command line or
// over HTTP.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
