package main

import (
	"fmt"
	"os"

	"github.com/erraggy/apidoc2oas"
	"github.com/erraggy/apidoc2oas/cmd/apidoc2oas/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apidoc2oas v%s\n", apidoc2oas.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var knownCommands = []string{"generate", "inspect", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`apidoc2oas - OpenAPI documents from apidoc documentation artifacts

Usage:
  apidoc2oas <command> [options]

Commands:
  generate    Generate an OpenAPI document from documentation artifacts
  inspect     Summarize documentation artifacts without generating
  mcp         Run as an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  apidoc2oas generate doc/api_data.json
  apidoc2oas generate -p doc/api_project.json -o openapi.yaml doc/api_data.json
  apidoc2oas generate -t base.yaml --strict doc/api_data.json
  apidoc2oas inspect --format json doc/api_data.json
  cat doc/api_data.json | apidoc2oas generate -

Run 'apidoc2oas <command> --help' for more information on a command.`)
}
