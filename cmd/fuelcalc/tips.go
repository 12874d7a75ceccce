package main

import (
	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/tools"
)

func tipsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tips",
		Usage: "Show tips to save fuel",
		Action: func(c *cli.Context) error {
			return callTool(c, tools.FuelSavingTips, nil)
		},
	}
}
