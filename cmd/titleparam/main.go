// Package main is the entry point for the titleparam resolver.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/titleparam/cmd/titleparam/commands"
	"go.trai.ch/titleparam/internal/app"
	"go.trai.ch/titleparam/internal/core/domain"
	_ "go.trai.ch/titleparam/internal/wiring"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return exitFailure
	}

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		if isRejection(err) {
			return exitRejected
		}
		return exitFailure
	}
	return exitOK
}

// isRejection reports whether err means the supplied values were refused,
// as opposed to the tool failing to run.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrValidationFailed) ||
		errors.Is(err, domain.ErrMissingParam) ||
		errors.Is(err, domain.ErrUnknownParam) ||
		errors.Is(err, domain.ErrInvalidArgument)
}
