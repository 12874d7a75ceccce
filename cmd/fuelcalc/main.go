package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "fuelcalc",
		Usage: "Compare the real cost of gasoline, ethanol and natural gas",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file (YAML or JSON)",
				EnvVars: []string{"FUELCALC_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "remote",
				Usage:   "Call the tools on a fuelcalc server at this URL instead of locally",
				EnvVars: []string{"FUELCALC_REMOTE"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log debug messages to stderr",
			},
		},
		Commands: []*cli.Command{
			recommendCommand(),
			volumeCommand(),
			tripCommand(),
			tipsCommand(),
			healthCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}
}
