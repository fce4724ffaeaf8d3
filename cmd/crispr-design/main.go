package main

import (
	"os"

	"github.com/p-salvatierra/crispr-design/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
