// Command heatgrid renders heatmap charts from tabular data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/heatgrid/internal/cli"
	hgerrors "github.com/matzehuels/heatgrid/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()
	os.Exit(exitStatus(err))
}

// exitStatus reports err on stderr and picks the process status. An
// interrupted run exits 130 like a shell-killed process.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	}
	fmt.Fprintln(os.Stderr, cli.StyleWarning.Render("error:"), hgerrors.UserMessage(err))
	return hgerrors.ExitCode(err)
}
