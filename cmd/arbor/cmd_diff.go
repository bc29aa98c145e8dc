package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/arbor/arith"
	"github.com/dhamidi/arbor/syntax"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "diff <old-file> <new-file>",
		Short: "Show which ranges changed meaning between two revisions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldText, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read old revision: %w", err)
			}
			newText, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read new revision: %w", err)
			}

			parser := arith.NewParser()
			oldTree := parser.Parse(oldText, nil)

			edit, changed := syntax.DiffEdit(oldText, newText)
			if !changed {
				fmt.Println("no changes")
				return nil
			}
			if err := oldTree.Edit(edit); err != nil {
				return fmt.Errorf("apply edit: %w", err)
			}

			newTree := parser.Parse(newText, oldTree)

			if edited := oldTree.EditedRange(); edited != nil {
				fmt.Printf("edited range: %s\n", edited)
			}

			ranges, err := oldTree.ChangedRanges(newTree)
			if err != nil {
				return fmt.Errorf("changed ranges: %w", err)
			}
			if len(ranges) == 0 {
				fmt.Println("no syntactic changes")
			}
			for _, r := range ranges {
				fmt.Printf("changed: %s %q\n", r, clip(newText, r.StartByte, r.EndByte))
			}

			if showStats {
				fmt.Printf("reused nodes: %d\n", parser.Stats().ReusedNodes)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showStats, "stats", false, "print subtree reuse statistics")

	return cmd
}

func clip(text []byte, start, end int) string {
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return string(text[start:end])
}
