package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "1.0.0"

func NewApp() *cli.App {
	return &cli.App{
		Name:                 "bubblesort",
		Usage:                "A bubble sort for numbers on the command line.",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                GlobalFlags(),
		Commands: []*cli.Command{
			CmdSort(),
			CmdCheck(),
			CmdHistory(),
		},
	}
}
