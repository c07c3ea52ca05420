// Command evals loads and reports on MCP tool selection evaluation suites.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// This command loads evaluation test suites, verifies that every registered
// tool has coverage, and reports the suite contents. For actual LLM
// evaluation, integrate the evals package with your LLM testing framework.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olgasafonova/youtube-mcp-server/evals"
	"github.com/olgasafonova/youtube-mcp-server/tools"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, or all")
	verbose := flag.Bool("verbose", false, "Show detailed test information")
	flag.Parse()

	fmt.Println("YouTube MCP Server - Evaluation Framework")
	fmt.Println("=========================================")
	fmt.Println()

	switch *suite {
	case "tool_selection":
		loadToolSelection(*dir, *verbose)
	case "confusion_pairs":
		loadConfusionPairs(*dir, *verbose)
	case "all":
		loadToolSelection(*dir, *verbose)
		loadConfusionPairs(*dir, *verbose)
	default:
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
}

func loadToolSelection(dir string, verbose bool) {
	path := filepath.Join(dir, "tool_selection.json")
	suite, err := evals.LoadToolSelectionSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tool selection suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tool Selection: %s (v%s)\n", suite.Name, suite.Version)
	fmt.Printf("  Tests: %d\n", len(suite.Tests))

	registered := make([]string, 0, len(tools.AllTools))
	for _, spec := range tools.AllTools {
		registered = append(registered, spec.Name)
	}
	if problems := evals.ValidateSuiteCoverage(suite, registered); len(problems) > 0 {
		fmt.Println("  Coverage problems:")
		for _, p := range problems {
			fmt.Printf("    - %s\n", p)
		}
	} else {
		fmt.Printf("  Coverage: all %d tools covered\n", len(registered))
	}

	if verbose {
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %q -> %s\n", test.ID, test.Input, test.ExpectedTool)
		}
	}
	fmt.Println()
}

func loadConfusionPairs(dir string, verbose bool) {
	path := filepath.Join(dir, "confusion_pairs.json")
	suite, err := evals.LoadConfusionPairSuite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading confusion pair suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Confusion Pairs: %s (v%s)\n", suite.Name, suite.Version)
	fmt.Printf("  Pairs: %d\n", len(suite.Pairs))

	if verbose {
		for _, pair := range suite.Pairs {
			fmt.Printf("  [%s] %v\n", pair.ID, pair.Tools)
			fmt.Printf("      %s\n", pair.Disambiguation)
			for _, test := range pair.Tests {
				fmt.Printf("      %q -> %s\n", test.Input, test.Expected)
			}
		}
	}
	fmt.Println()
}
