package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"checklist-ledger/internal/checklist"
)

func newPercentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "percent <total> <index>",
		Short: "Compute completion for a stored index",
		Long:  "Prints the completion percent and bucket for an outline of <total> items whose stored index is <index>. A negative index means no record.",
		Args:  cobra.ExactArgs(2),
		RunE:  runPercent,
	}
	// Lets a negative index through as a positional argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

type percentResult struct {
	Total   int    `json:"total"`
	Index   int    `json:"index"`
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

func runPercent(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	total, err := strconv.Atoi(args[0])
	if err != nil || total < 0 {
		return fmt.Errorf("invalid total %q", args[0])
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[1])
	}

	pct := checklist.Percent(idx, idx >= 0, total)
	res := percentResult{Total: total, Index: idx, Percent: pct, Status: bucket(pct)}

	w := cmd.OutOrStdout()
	if format == "json" {
		b, _ := json.Marshal(res)
		fmt.Fprintln(w, string(b))
		return nil
	}
	fmt.Fprintf(w, "%d%% (%s)\n", res.Percent, res.Status)
	return nil
}

func bucket(pct int) string {
	sum := checklist.Classify([]checklist.Entry{{Percent: pct}})
	switch {
	case len(sum.Completed) > 0:
		return "completed"
	case len(sum.Ongoing) > 0:
		return "ongoing"
	}
	return "not started"
}
