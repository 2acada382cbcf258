package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/memsim <command> <flags>

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "memsim",
		Usage: "virtual memory page replacement simulator",
		Commands: []*cli.Command{
			&RunCmd,
			&HistoryCmd,
			&ConvertCmd,
		},
	}
}
