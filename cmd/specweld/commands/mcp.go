package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/specweld/specweld/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: specweld mcp\n\n")
		Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio, exposing the\n")
		Writef(fs.Output(), "merge, split, and validate tools. Defaults are configured through\n")
		Writef(fs.Output(), "SPECWELD_MCP_* environment variables set in the MCP client config.\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(ctx context.Context, args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return mcpserver.Run(ctx)
}
