package server

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/internal/tools"
)

// MCP builds an MCP server exposing every tool. The same instance backs the
// /mcp route and the stdio transport.
func (s *Server) MCP() *mcpserver.MCPServer {
	m := mcpserver.NewMCPServer("fuelcalc", tools.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	for _, t := range tools.List() {
		m.AddTool(mcpTool(t), s.mcpHandler(t.Name))
	}
	return m
}

func mcpTool(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}
	for _, p := range t.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}
		if p.Number() {
			props = append(props, mcp.Min(p.Bounds.Min), mcp.Max(p.Bounds.Max))
			opts = append(opts, mcp.WithNumber(p.Name, props...))
			continue
		}
		if len(p.Enum) > 0 {
			props = append(props, mcp.Enum(p.Enum...))
		}
		if p.Default != "" {
			props = append(props, mcp.DefaultString(p.Default))
		}
		opts = append(opts, mcp.WithString(p.Name, props...))
	}
	return mcp.NewTool(t.Name, opts...)
}

func (s *Server) mcpHandler(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := s.Call(name, tools.Args(req.GetArguments()))
		if err != nil {
			if errors.Is(err, fuelcalc.ErrValidation) || errors.Is(err, tools.ErrUnknownTool) {
				return mcp.NewToolResultError(err.Error()), nil
			}
			s.log.Error("mcp tool call failed", "tool", name, "error", err)
			return nil, err
		}
		return mcp.NewToolResultText(res.Text), nil
	}
}
