package main

import (
	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/tools"
)

func recommendCommand() *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Recommend the most economical fuel",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "Output mode: full or summary",
				Value:   "full",
			},
		}, priceFlags()...),
		Action: recommendAction,
	}
}

func recommendAction(c *cli.Context) error {
	args := priceArgs(c)
	args["output_mode"] = c.String("mode")
	return callTool(c, tools.RecommendFuel, args)
}
