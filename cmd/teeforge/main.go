package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"teeforge/internal/cli"
	"teeforge/internal/gui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cli.SetVersion(version, commit, date)
	c := cli.New(os.Stderr, cli.LogInfo)

	guiCmd := &cobra.Command{
		Use:   "gui [image]",
		Short: "Open the customizer window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return openWindow(c, args)
		},
	}

	root := c.RootCommand(guiCmd)
	// Without a subcommand the window opens, optionally with an image.
	root.Args = cobra.MaximumNArgs(1)
	root.RunE = guiCmd.RunE

	return root.ExecuteContext(ctx)
}

func openWindow(c *cli.CLI, args []string) error {
	app, err := gui.NewApp(c.Config, c.Logger)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		app.RunWithFile(args[0])
	} else {
		app.Run()
	}
	return nil
}
