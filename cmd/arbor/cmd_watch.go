package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhamidi/arbor/arith"
	"github.com/dhamidi/arbor/syntax"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-parse a file on every write and report changed ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			parser := arith.NewParser()
			tree := parser.Parse(text, nil)
			fmt.Printf("watching %s\n", path)

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer watcher.Close()

			// Editors often replace files instead of writing in
			// place, so watch the directory rather than the file.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch directory: %w", err)
			}

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if event.Name != path {
						continue
					}
					if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
						continue
					}
					newText, err := os.ReadFile(path)
					if err != nil {
						fmt.Fprintf(os.Stderr, "read file: %v\n", err)
						continue
					}
					tree, text = reportChanges(cmd, parser, tree, text, newText)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintf(os.Stderr, "watch: %v\n", err)
				}
			}
		},
	}

	return cmd
}

func reportChanges(cmd *cobra.Command, parser *arith.Parser, tree *syntax.Tree, oldText, newText []byte) (*syntax.Tree, []byte) {
	edit, changed := syntax.DiffEdit(oldText, newText)
	if !changed {
		return tree, oldText
	}
	if err := tree.Edit(edit); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "apply edit: %v\n", err)
		return parser.Parse(newText, nil), newText
	}

	newTree := parser.Parse(newText, tree)

	ranges, err := tree.ChangedRanges(newTree)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "changed ranges: %v\n", err)
		return newTree, newText
	}
	out := cmd.OutOrStdout()
	if len(ranges) == 0 {
		fmt.Fprintln(out, "no syntactic changes")
	}
	for _, r := range ranges {
		fmt.Fprintf(out, "changed: %s %q\n", r, clip(newText, r.StartByte, r.EndByte))
	}
	// Stats cover the most recent parse only.
	fmt.Fprintf(out, "reused %d nodes\n", parser.Stats().ReusedNodes)
	return newTree, newText
}
