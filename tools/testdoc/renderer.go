package main

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"
)

// commandPrefixes maps test name prefixes to the command they exercise.
// Unlisted prefixes are grouped under their lowercased name.
var commandPrefixes = map[string]string{
	"PostGen":   "cutter post-gen",
	"Scenario":  "cutter post-gen",
	"Installer": "cutter post-gen",
	"Outcome":   "cutter post-gen",
	"Doctor":    "cutter doctor",
	"Config":    "cutter config",
	"Load":      "cutter config",
	"Validate":  "cutter config",
	"Suggest":   "cutter config",
	"Demo":      "cutter demo",
	"Template":  "cutter hello / item",
	"Greet":     "cutter hello / item",
}

var anchorRe = regexp.MustCompile(`[^a-z0-9-]`)

// RenderMarkdown writes the test documentation as markdown, one section
// per command.
func RenderMarkdown(w io.Writer, packages []TestPackage) error {
	fmt.Fprintf(w, "# Test Documentation\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format("2006-01-02"))

	byCommand := make(map[string][]TestFunc)
	for _, pkg := range packages {
		for _, file := range pkg.Files {
			for _, test := range file.Tests {
				cmd := extractCommand(test.Name)
				byCommand[cmd] = append(byCommand[cmd], test)
			}
		}
	}

	commands := make([]string, 0, len(byCommand))
	for cmd := range byCommand {
		commands = append(commands, cmd)
	}
	slices.Sort(commands)

	fmt.Fprintf(w, "## Summary\n\n")
	fmt.Fprintf(w, "| Command | Tests | Integration |\n")
	fmt.Fprintf(w, "|---------|-------|-------------|\n")

	var total, totalIntegration int
	for _, cmd := range commands {
		tests := byCommand[cmd]
		n := countIntegration(tests)
		fmt.Fprintf(w, "| [%s](#%s) | %d | %d |\n", cmd, toAnchor(cmd), len(tests), n)
		total += len(tests)
		totalIntegration += n
	}
	fmt.Fprintf(w, "| **Total** | **%d** | **%d** |\n\n", total, totalIntegration)

	for _, cmd := range commands {
		renderCommandSection(w, cmd, byCommand[cmd])
	}
	return nil
}

func renderCommandSection(w io.Writer, cmd string, tests []TestFunc) {
	fmt.Fprintf(w, "## %s\n\n", cmd)
	fmt.Fprintf(w, "| Test | Description | Scenario | Expected |\n")
	fmt.Fprintf(w, "|------|-------------|----------|----------|\n")

	for _, test := range tests {
		name := "`" + test.Name + "`"
		if test.Integration {
			name += " (integration)"
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n", name,
			cell(describe(test.Doc, test.Name)), cell(test.Scenario), cell(test.Expected))
	}
	fmt.Fprintf(w, "\n")
}

// extractCommand returns the command a test exercises, based on the part
// of its name before the first underscore.
//
//	TestPostGen_DryRun  -> cutter post-gen
//	TestDoctor_Healthy  -> cutter doctor
//	TestPrinter_Println -> printer
func extractCommand(testName string) string {
	prefix, _, _ := strings.Cut(strings.TrimPrefix(testName, "Test"), "_")
	if prefix == "" {
		return "other"
	}
	if cmd, ok := commandPrefixes[prefix]; ok {
		return cmd
	}
	return strings.ToLower(prefix)
}

// describe capitalizes the summary and drops a leading test name.
func describe(doc, testName string) string {
	doc = strings.TrimPrefix(doc, testName+" ")
	if doc == "" {
		return "_No documentation_"
	}
	r := []rune(doc)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}

func countIntegration(tests []TestFunc) int {
	n := 0
	for _, t := range tests {
		if t.Integration {
			n++
		}
	}
	return n
}

// toAnchor converts a command name to a GitHub markdown anchor.
func toAnchor(cmd string) string {
	return anchorRe.ReplaceAllString(strings.ReplaceAll(strings.ToLower(cmd), " ", "-"), "")
}
