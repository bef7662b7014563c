package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"drift/internal/mood"
)

func recordCmd() *cobra.Command {
	var x, y float64
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record today's mood without the interactive surface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
				return fmt.Errorf("--x and --y are required")
			}
			ctx := context.Background()
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close(ctx)

			c := mood.Coords{X: x, Y: y}.Clamp()
			s.store.Save(ctx, mood.TodayKey(s.cfg.Prefix, nil), c)
			cmd.Printf("today: %s (%.2f, %.2f)\n", c.Label(), c.X, c.Y)
			return nil
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "Energy, 0 (low) to 1 (high)")
	cmd.Flags().Float64Var(&y, "y", 0, "Weight, 0 (light) to 1 (heavy)")
	return cmd
}
