// Package main provides the transfer command: the course transfer
// equivalency API server and its dataset tooling.
package main

import (
	"os"

	"github.com/leapstack-labs/transfer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
