package main

import (
	"context"
	"fmt"
	"os"

	"github.com/specweld/specweld"
	"github.com/specweld/specweld/cmd/specweld/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("specweld v%s\n", specweld.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		run(commands.HandleGenerate, os.Args[2:])
	case "split":
		run(commands.HandleSplit, os.Args[2:])
	case "validate":
		run(commands.HandleValidate, os.Args[2:])
	case "mcp":
		if err := commands.HandleMCP(context.Background(), os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func run(handler func([]string) error, args []string) {
	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`specweld - OpenAPI specification aggregation

Usage:
  specweld <command> [options]

Commands:
  generate    Merge fragment trees into full specs for the configured versions
  split       Split a full spec back into a fragment tree
  validate    Validate the merged spec of each configured version
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  specweld generate
  specweld generate -r ./my-api -a v2
  specweld split -i spec/v1/full_spec.yaml
  specweld validate --conformance
  specweld mcp

Run 'specweld <command> --help' for more information on a command.`)
}
