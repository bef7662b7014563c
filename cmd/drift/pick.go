package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"drift/internal/tui"
	"drift/internal/widget"
)

func pickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Drag today's mood on an interactive terminal surface",
		Args:  cobra.NoArgs,
		RunE:  runPick,
	}
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close(context.Background())

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}

	app, err := tui.New(ctx, screen, s.store, s.logger, widget.WithPrefix(s.cfg.Prefix))
	if errors.Is(err, widget.ErrMissingElements) {
		// Already logged; the picker simply does not start.
		return nil
	}
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		return err
	}

	w := app.Widget()
	c := w.Coords()
	cmd.Printf("today: %s (%.2f, %.2f)\n", w.Label(), c.X, c.Y)
	return nil
}
