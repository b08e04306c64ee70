package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWorldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "World commands",
	}

	cmd.AddCommand(newWorldShowCmd())
	cmd.AddCommand(newWorldBuyCmd())
	cmd.AddCommand(newWorldResetCmd())

	return cmd
}

func newWorldShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the world grid and your balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result World

			if err := client.Get("/api/v1/world", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWorldBuyCmd() *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy the tile at a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"row": row, "col": col}
			var result World

			if err := client.Post("/api/v1/world/purchase", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
			} else {
				out.PrintMessage(fmt.Sprintf("Bought tile (%d, %d). Money: $%d", row, col, result.MyBalance))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "Tile row (required)")
	cmd.Flags().IntVar(&col, "col", 0, "Tile column (required)")
	_ = cmd.MarkFlagRequired("row")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}

func newWorldResetCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all game data",
		Long: `Reset all game data. This removes every account, all balances and
all tile ownership. The --confirm flag is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				return fmt.Errorf("refusing to reset without --confirm")
			}

			if err := client.Delete("/api/v1/world?confirm=true"); err != nil {
				return err
			}

			// The reset invalidated every session including ours
			if err := cfg.ClearToken(); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("All game data has been reset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the reset")

	return cmd
}
