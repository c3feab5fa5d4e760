package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultCountOut = "public/resources-count.json"

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Write the per-kind resource count summary",
		Long:  `Counts resource files per kind and writes {"games": n, "series": m}. Missing kind directories count as 0.`,
		Args:  cobra.NoArgs,
		RunE:  runCount,
	}
	cmd.Flags().StringP("out", "o", defaultCountOut, `Output file, "-" for stdout`)
	return cmd
}

func runCount(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	svc, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	count, err := svc.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}

	b, err := json.MarshalIndent(count, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	if out == "-" {
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (games=%d, series=%d)\n", out, count.Games, count.Series)
	return nil
}
