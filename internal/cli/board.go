package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board view-state commands",
	}

	cmd.AddCommand(newBoardViewCmd())
	cmd.AddCommand(newBoardSelectCmd())
	cmd.AddCommand(newBoardBuyCmd())
	cmd.AddCommand(newBoardCameraCmd())

	return cmd
}

func newBoardViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show your camera and selection state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BoardView

			if err := client.Get("/api/v1/board/view", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBoardSelectCmd() *cobra.Command {
	var row, col int

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the tile at a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"row": row, "col": col}
			var result BoardView

			if err := client.Post("/api/v1/board/select", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&row, "row", 0, "Tile row (required)")
	cmd.Flags().IntVar(&col, "col", 0, "Tile column (required)")
	_ = cmd.MarkFlagRequired("row")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}

func newBoardBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy",
		Short: "Buy the currently selected tile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result World

			if err := client.Post("/api/v1/board/purchase", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
			} else {
				out.PrintMessage(fmt.Sprintf("Tile purchased. Money: $%d", result.MyBalance))
			}
			return nil
		},
	}
}

func newBoardCameraCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "camera <command>",
		Short:     "Apply a camera command",
		Long:      "Apply a camera command: pan_up, pan_down, pan_left, pan_right, zoom_in, zoom_out",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"pan_up", "pan_down", "pan_left", "pan_right", "zoom_in", "zoom_out"},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"command": args[0]}
			var result BoardView

			if err := client.Post("/api/v1/board/camera", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	return cmd
}
