package main

import (
	"github.com/gamesleague/platform/internal/cli"
)

func main() {
	cli.Execute()
}
