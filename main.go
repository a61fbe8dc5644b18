package main

import (
	"os"

	"github.com/deploymenttheory/go-checksum/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
