package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ndewijer/Coffee-Trade-Manager-Backend/internal/cli"
)

func main() {
	if err := cli.NewApp().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
