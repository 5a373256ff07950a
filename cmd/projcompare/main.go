// Package main provides the entry point for the projcompare CLI.
//
// projcompare reads a JSON list of projects with estimated revenue and public
// impact, then shows them as a scatter chart or prints them as a table.
//
// Usage:
//
//	projcompare --config projects.json --visu revenue-public
//	projcompare --config projects.json --visu table
//
// See --help for all available options.
package main

// main is the entry point for projcompare.
func main() {
	Execute()
}
