package main

import (
	"github.com/tmccay/cityblocks/internal/cli"
)

func main() {
	cli.Execute()
}
