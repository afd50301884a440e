package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var deleteFlag bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "romfilter <directory>",
		Short: "Remove duplicate No-Intro ROM variants from a directory",
		Long: "Groups the ROM files of a directory by title and keeps the best variant of each\n" +
			"title by region preference and revision. Without -D only a report is printed:\n" +
			"  '-' marks a file that would be removed, '?' a group that needs a decision.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          directoryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runFilter(cmd, cfg, args[0], deleteFlag)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&deleteFlag, "delete", "D", false, "Delete duplicates instead of only reporting them")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}

func directoryArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New("directory path parameter not passed")
	case len(args) > 1:
		return fmt.Errorf("unknown parameter: %s", args[1])
	}
	return nil
}
