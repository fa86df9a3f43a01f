// Command routegen generates page stub files from a route tree.
package main

import (
	"os"

	"github.com/modu-ai/routegen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
