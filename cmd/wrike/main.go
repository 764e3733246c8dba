package main

import (
	"os"

	"github.com/hashicorp-forge/wrike/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
