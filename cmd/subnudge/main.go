package main

import (
	"os"

	"github.com/subnudge/subnudge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
