// Package main provides the boatpay command line front-end for daily
// attendance and payroll.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
