package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/config"
	"github.com/rubiojr/fuelcalc/internal/tools"
	"github.com/rubiojr/fuelcalc/pkg/api"
)

func priceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:     "gasoline",
			Aliases:  []string{"g"},
			Usage:    "Gasoline price per liter (R$)",
			Required: true,
		},
		&cli.Float64Flag{
			Name:     "ethanol",
			Aliases:  []string{"e"},
			Usage:    "Ethanol price per liter (R$)",
			Required: true,
		},
		&cli.Float64Flag{
			Name:  "gas",
			Usage: "Natural gas (CNG) price per m³ (R$), optional",
		},
	}
}

// priceArgs collects the price flags. The gas price is only sent when given.
func priceArgs(c *cli.Context) tools.Args {
	args := tools.Args{
		"gasoline_price": c.Float64("gasoline"),
		"ethanol_price":  c.Float64("ethanol"),
	}
	if c.IsSet("gas") {
		args["gas_price"] = c.Float64("gas")
	}
	return args
}

// callTool runs a tool locally, or on the server given by --remote, and
// prints its text.
func callTool(c *cli.Context, name string, args tools.Args) error {
	var res *api.ToolResult
	if remote := c.String("remote"); remote != "" {
		cliLogger(c).Debug("calling remote tool", "server", remote, "tool", name)
		r, err := api.NewClient(remote).Call(c.Context, name, args)
		if err != nil {
			return err
		}
		res = r
	} else {
		r, err := tools.Call(name, args)
		if err != nil {
			return err
		}
		res = &r
	}

	fmt.Fprintln(c.App.Writer, res.Text)
	return nil
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	return cfg, nil
}

func cliLogger(c *cli.Context) *slog.Logger {
	if !c.Bool("verbose") {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
