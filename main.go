package main

import (
	"os"

	"github.com/ohtsuboy/NGSPairMapper/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs() // regenerate ./docs from the command tree
		return
	}

	cmd.Execute() // initialize cobra commands
}
