// Command insightsctl queries a campaign dataset from the terminal. It reads
// the same environment configuration as the server, or a local CSV given
// with --csv.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
