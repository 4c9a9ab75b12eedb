package main

import (
	"os"

	"github.com/ai8future/searchkey/cmd/searchkey/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
