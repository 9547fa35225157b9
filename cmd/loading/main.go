package main

import (
	"context"

	"github.com/thecodeteam/goodbye"

	"github.com/elseano/loading/cmd/loading/cmd"
)

var GitCommit string
var Version string

func main() {
	ctx := context.Background()

	// Signal handlers registered by cmd end any live Loading before exit.
	goodbye.Notify(ctx)

	goodbye.Exit(ctx, exitCode(cmd.Execute(Version, GitCommit)))
}

func exitCode(err error) int {
	switch err {
	case cmd.ErrorArg:
		return 128
	case cmd.ErrorInternal:
		return 129
	case cmd.ErrorCommand:
		return 1
	case nil:
		return 0
	}

	return 3
}
