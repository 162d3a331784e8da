package main

import (
	"github.com/kastheco/codecolor/cmd"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
