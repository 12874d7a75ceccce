package main

import (
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v2"

	"github.com/rubiojr/fuelcalc/internal/server"
)

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:   "mcp",
		Usage:  "Serve the tools as an MCP server over stdio",
		Action: mcpAction,
	}
}

func mcpAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := server.NewStreamLogger(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("MCP server listening on stdio")
	return mcpserver.ServeStdio(srv.MCP())
}
