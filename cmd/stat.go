package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/samzong/burrow/internal/stat"
	"github.com/spf13/cobra"
)

var (
	statAll bool
	statNow = time.Now
	statCmd = &cobra.Command{
		Use:   "stat [--all] [PATH...]",
		Short: "Show ls -l style details for paths",
		Long: `Print mode, link count, owner, group, size, modification time and name for
each path. Symbolic links are described, not followed. With --all every entry of
the current directory is listed.`,
		RunE: func(_ *cobra.Command, args []string) error {
			paths := args
			if statAll {
				entries, err := listCurrentDir()
				if err != nil {
					return err
				}
				paths = append(entries, paths...)
			}
			if len(paths) == 0 {
				return errors.New("no paths given: pass PATH... or --all")
			}
			return stat.Print(outWriter(), errWriter(), paths, statNow())
		},
	}
)

func init() {
	statCmd.Flags().BoolVarP(&statAll, "all", "a", false, "List every entry in the current directory")
	rootCmd.AddCommand(statCmd)
}

func listCurrentDir() ([]string, error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read current directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
