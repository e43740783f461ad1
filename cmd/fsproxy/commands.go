package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/desertwitch/fsproxy/internal/fsproxy"
	"github.com/desertwitch/fsproxy/internal/pathing"
	"github.com/desertwitch/fsproxy/internal/ui"
	"github.com/spf13/cobra"
)

func newRootCmd(fsys fsproxy.FileSystem, noUI bool) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "fsproxy",
		Short:        "Inspect a filesystem through the capability interface",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newLsCmd(fsys),
		newExistsCmd(fsys),
		newIsDirCmd(fsys),
		newBrowseCmd(fsys, noUI),
	)

	return rootCmd
}

func newLsCmd(fsys fsproxy.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:   "ls PATH",
		Short: "List a directory's immediate children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := fsys.GetDirectoryContents(args[0])
			if err != nil {
				return fmt.Errorf("(ls) %w", err)
			}

			sort.Strings(entries)
			for _, entry := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), entry)
			}

			return nil
		},
	}
}

func newExistsCmd(fsys fsproxy.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:   "exists PATH",
		Short: "Report whether a path resolves to an existing entry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), fsys.Exists(args[0]))
		},
	}
}

func newIsDirCmd(fsys fsproxy.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:   "isdir PATH",
		Short: "Report whether a path resolves to a directory",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), fsys.IsDirectory(args[0]))
		},
	}
}

func newBrowseCmd(fsys fsproxy.FileSystem, noUI bool) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [PATH]",
		Short: "Browse a filesystem interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startPath := pathing.Separator
			if len(args) == 1 {
				startPath = args[0]
			}

			if !pathing.IsAbs(startPath) {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("(browse) %w", err)
				}
				startPath = pathing.Join(cwd, startPath)
			}

			if noUI {
				return newLsCmd(fsys).RunE(cmd, []string{startPath})
			}

			uiHandler := ui.NewHandler(cmd.Context(), fsys, startPath)
			if err := uiHandler.Launch(); err != nil {
				return fmt.Errorf("(browse) %w", err)
			}

			return nil
		},
	}
}
