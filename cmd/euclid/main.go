// Package main provides the CLI for the Euclid proof checker.
package main

import "github.com/leapstack-labs/euclid/internal/cli"

func main() {
	cli.Execute()
}
