// Package main provides the entry point for the routelint CLI tool.
package main

import (
	"github.com/tyriatrails/routelint/cmd/routelint/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
