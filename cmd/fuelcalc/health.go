package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/tools"
	"github.com/rubiojr/fuelcalc/pkg/api"
)

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:   "health",
		Usage:  "Show the service status, version and tools",
		Action: healthAction,
	}
}

func healthAction(c *cli.Context) error {
	status := tools.Health()
	if remote := c.String("remote"); remote != "" {
		s, err := api.NewClient(remote).Health(c.Context)
		if err != nil {
			return err
		}
		status = *s
	}

	fmt.Fprintf(c.App.Writer, "Status: %s\n", status.Status)
	fmt.Fprintf(c.App.Writer, "Version: %s\n", status.Version)
	fmt.Fprintf(c.App.Writer, "Tools: %s\n", strings.Join(status.Tools, ", "))
	return nil
}
