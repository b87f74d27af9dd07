// SPDX-License-Identifier: MIT

// Command matrixctl runs dense matrix operations over TOML matrix documents.
package main

import (
	"os"

	"github.com/katalvlaran/lvmatrix/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
