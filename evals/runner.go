// Package evals provides an evaluation framework for testing MCP tool
// selection accuracy. It validates that LLMs select the correct YouTube tool
// and extract proper arguments from natural language inputs.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
)

// ToolSelectionTest represents a single tool selection evaluation case.
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests.
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest represents a single disambiguation test.
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair represents a pair of tools that are commonly confused.
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests.
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ToolSelectionResult represents the result of one selection evaluation.
type ToolSelectionResult struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// EvalMetrics contains aggregate metrics for an evaluation run.
type EvalMetrics struct {
	TotalTests  int
	PassedTests int
	FailedTests int
	Accuracy    float64 // PassedTests / TotalTests
	ByCategory  map[string]*CategoryMetrics
}

// CategoryMetrics contains metrics per category.
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file.
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ToolSelectionSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &suite, nil
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file.
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite ConfusionPairSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	return &suite, nil
}

// ToolSelector is an interface that an LLM or mock can implement for testing.
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a natural language input
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// EvaluateToolSelection runs tool selection tests against a selector.
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*EvalMetrics, []ToolSelectionResult) {
	metrics := &EvalMetrics{
		ByCategory: make(map[string]*CategoryMetrics),
	}
	var results []ToolSelectionResult

	for _, test := range suite.Tests {
		metrics.TotalTests++
		if metrics.ByCategory[test.Category] == nil {
			metrics.ByCategory[test.Category] = &CategoryMetrics{}
		}
		metrics.ByCategory[test.Category].Total++

		actualTool, _, err := selector.SelectTool(test.Input)

		result := ToolSelectionResult{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
		}

		switch {
		case err != nil:
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		case actualTool != test.ExpectedTool:
			result.Errors = append(result.Errors, fmt.Sprintf("expected %s, got %s", test.ExpectedTool, actualTool))
		default:
			for _, forbidden := range test.NotTools {
				if actualTool == forbidden {
					result.Errors = append(result.Errors, fmt.Sprintf("selected forbidden tool %s", forbidden))
				}
			}
		}

		result.Passed = len(result.Errors) == 0
		if result.Passed {
			metrics.PassedTests++
			metrics.ByCategory[test.Category].Passed++
		} else {
			metrics.FailedTests++
			metrics.ByCategory[test.Category].Failed++
		}
		results = append(results, result)
	}

	if metrics.TotalTests > 0 {
		metrics.Accuracy = float64(metrics.PassedTests) / float64(metrics.TotalTests)
	}
	return metrics, results
}

// ValidateSuiteCoverage checks that every registered tool appears as an
// expected tool in at least one test, and that no test references an
// unknown tool.
func ValidateSuiteCoverage(suite *ToolSelectionSuite, registeredTools []string) []string {
	registered := make(map[string]bool, len(registeredTools))
	for _, name := range registeredTools {
		registered[name] = false
	}

	var problems []string
	for _, test := range suite.Tests {
		if _, ok := registered[test.ExpectedTool]; !ok {
			problems = append(problems, fmt.Sprintf("test %s expects unknown tool %s", test.ID, test.ExpectedTool))
			continue
		}
		registered[test.ExpectedTool] = true
	}

	for name, covered := range registered {
		if !covered {
			problems = append(problems, fmt.Sprintf("tool %s has no selection tests", name))
		}
	}
	return problems
}
