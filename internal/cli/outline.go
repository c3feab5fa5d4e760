package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"checklist-ledger/internal/catalog"
)

func newOutlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <kind> <id>",
		Short: "Print a parsed outline",
		Args:  cobra.ExactArgs(2),
		RunE:  runOutline,
	}
}

func runOutline(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	kind, err := catalog.ParseKind(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", err, args[0])
	}

	svc, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	res, err := svc.Get(cmd.Context(), catalog.GetInput{Kind: kind, ID: args[1]})
	if err != nil {
		return fmt.Errorf("outline %s/%s: %w", kind, args[1], err)
	}
	o := res.Outline

	w := cmd.OutOrStdout()
	if format == "json" {
		b, _ := json.MarshalIndent(o, "", "  ")
		fmt.Fprintln(w, string(b))
		return nil
	}

	fmt.Fprintln(w, o.Title)
	p := 0
	for _, s := range o.Sections {
		if s.Header != "" {
			fmt.Fprintf(w, "\n%s\n", s.Header)
		}
		for _, item := range s.Items {
			fmt.Fprintf(w, "  [%d] %s\n", p, item)
			p++
		}
	}
	fmt.Fprintf(w, "\ntotal: %d\n", o.Total())
	return nil
}
