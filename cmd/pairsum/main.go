// SPDX-License-Identifier: MIT

// Command pairsum prints Σ GCD(i,j) + LCM(i,j) over all pairs 1 ≤ i < j ≤ 1000.
package main

import (
	"os"

	"github.com/katalvlaran/pairsum/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
