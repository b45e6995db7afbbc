// Package main is the entry point for the riskctl CLI binary.
package main

import (
	"os"

	cli "risk-demo/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
