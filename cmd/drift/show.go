package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"drift/internal/mood"
	"drift/internal/persist"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print today's mood and yesterday's for comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			return printMoods(ctx, cmd.OutOrStdout(), s.store, s.cfg.Prefix, nil)
		},
	}
}

func printMoods(ctx context.Context, out io.Writer, store *persist.Adapter, prefix string, clock mood.Clock) error {
	now := clock.Now()
	fmt.Fprintln(out, mood.FormatDateLabel(now, now))

	today, recorded := store.Load(ctx, mood.KeyForDate(prefix, now))
	if !recorded {
		today = mood.Center
	}
	today = today.Clamp()
	suffix := ""
	if !recorded {
		suffix = " (not recorded)"
	}
	fmt.Fprintf(out, "  today:     %-9s (%.2f, %.2f)%s\n", today.Label(), today.X, today.Y, suffix)

	yesterday := mood.OffsetDate(clock, -1)
	if c, ok := store.Load(ctx, mood.KeyForDate(prefix, yesterday)); ok {
		c = c.Clamp()
		fmt.Fprintf(out, "  %-10s %-9s (%.2f, %.2f)\n", mood.FormatDateLabel(yesterday, now)+":", c.Label(), c.X, c.Y)
	}
	return nil
}
