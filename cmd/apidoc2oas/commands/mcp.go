package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/apidoc2oas/internal/cliutil"
	"github.com/erraggy/apidoc2oas/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: apidoc2oas mcp\n\n")
		cliutil.Writef(fs.Output(), "Run apidoc2oas as an MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "The server exposes generate and inspect as MCP tools. It reads requests\n")
		cliutil.Writef(fs.Output(), "from stdin and writes responses to stdout, so it is meant to be launched\n")
		cliutil.Writef(fs.Output(), "by an MCP client, not used interactively.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
