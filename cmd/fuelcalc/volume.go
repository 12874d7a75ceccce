package main

import (
	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/tools"
)

func volumeCommand() *cli.Command {
	return &cli.Command{
		Name:  "volume",
		Usage: "Compare what each fuel costs to cover the distance of a volume of gasoline",
		Flags: append([]cli.Flag{
			&cli.Float64Flag{
				Name:     "liters",
				Aliases:  []string{"l"},
				Usage:    "Liters of gasoline",
				Required: true,
			},
		}, priceFlags()...),
		Action: volumeAction,
	}
}

func volumeAction(c *cli.Context) error {
	args := priceArgs(c)
	args["liters"] = c.Float64("liters")
	return callTool(c, tools.CompareVolumeSavings, args)
}
