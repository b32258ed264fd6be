package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/vfg2006/marketmind-gateway/infrastructure/integrator/marketmind/mmclient"
	"github.com/vfg2006/marketmind-gateway/internal/cli"
	"github.com/vfg2006/marketmind-gateway/internal/usecases/workspace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %s", err))

		var validationErr *workspace.ValidationError
		if transportErr, ok := mmclient.AsTransportError(err); ok && transportErr.Timeout() {
			fmt.Fprintln(os.Stderr, color.YellowString("The backend did not answer in time; try a larger --timeout"))
		} else if errors.As(err, &validationErr) {
			fmt.Fprintln(os.Stderr, color.YellowString("Required flags are missing: see %s --help", root.Name()))
		}
		os.Exit(1)
	}
}
