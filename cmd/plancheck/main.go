package main

import (
	"os"

	"github.com/kdambrauskas/plancheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
