// Package main provides the entry point for the solda CLI tool.
package main

import (
	"context"
	"os"

	"github.com/noi-techpark/solda-aliens4friends-sub000/internal/cmdapp"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	app, err := cmdapp.New(version, commit, date, builtBy)
	if err != nil {
		cmdapp.ExitOnError(err)
	}

	ctx, cancel := cmdapp.ContextWithSignals(context.Background())
	defer cancel()

	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		cmdapp.ExitOnError(err)
	}
}
