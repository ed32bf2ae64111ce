package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/erraggy/apitypes"
	"github.com/erraggy/apitypes/cmd/apitypes/commands"
	"github.com/erraggy/apitypes/internal/mcpserver"
)

// commandNames lists the dispatchable commands, used for typo suggestions.
var commandNames = []string{"generate", "validate", "sync", "init", "inspect", "mcp", "version", "help"}

func main() {
	// A missing .env file is the common case.
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(os.Getenv("APITYPES_LOG_LEVEL"))})))

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	os.Exit(run(os.Args[1], os.Args[2:]))
}

// run dispatches one command and returns the process exit status.
func run(command string, args []string) int {
	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apitypes v%s\n", apitypes.Version())
		if len(args) > 0 && (args[0] == "-l" || args[0] == "--long") {
			fmt.Println(apitypes.BuildInfo())
		}
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "generate", "gen":
		err = commands.HandleGenerate(args)
	case "validate":
		err = commands.HandleValidate(args)
	case "sync":
		err = commands.HandleSync(args)
	case "init":
		err = commands.HandleInit(args)
	case "inspect":
		err = commands.HandleInspect(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = mcpserver.Run(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err != nil {
		if !errors.Is(err, commands.ErrValidationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// logLevel parses APITYPES_LOG_LEVEL, defaulting to warn.
func logLevel(s string) slog.Level {
	var level slog.Level
	if s == "" || level.UnmarshalText([]byte(s)) != nil {
		return slog.LevelWarn
	}
	return level
}

// suggestCommand returns the closest command name within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(strings.ToLower(input), name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`apitypes - Type generation for JSON Schema and OpenAPI documents

Usage:
  apitypes <command> [options]

Commands:
  generate    Generate types from a schema file (alias: gen)
  validate    Validate a schema file
  sync        Fetch a remote schema and generate TypeScript types
  init        Create a new apitypes project
  inspect     Print the mapped type tree of a schema
  mcp         Run the MCP server on stdio
  version     Show version information
  help        Show this help message

Examples:
  apitypes init
  apitypes generate -i openapi.json -o ./types
  apitypes gen -f go --package models -o ./models
  apitypes validate --strict openapi.json
  apitypes sync -u https://api.example.com/openapi.json
  apitypes inspect schemas/example.json

Environment:
  APITYPES_LOG_LEVEL    debug, info, warn (default), or error
  A .env file in the working directory is loaded when present.

Run 'apitypes <command> --help' for more information on a command.`)
}
