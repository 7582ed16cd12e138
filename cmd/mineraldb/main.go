// Package main provides the mineraldb CLI: a query tool over the mineral
// crystallographic and gemmological reference database.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitSysError)
	}
}
