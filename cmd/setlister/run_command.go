package main

import (
	"github.com/spf13/cobra"

	"setlister/internal/logging"
	"setlister/internal/services/drive"
	"setlister/internal/workflow"
)

func newRunCommand(cctx *commandContext) *cobra.Command {
	var fromTable int
	var replace bool

	cmd := &cobra.Command{
		Use:   "run [config-path]",
		Short: "Read the agenda and copy matching files into the output folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positional := ""
			if len(args) == 1 {
				positional = args[0]
			}
			cfg, err := cctx.loadConfig(positional)
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			manager, err := drive.NewTokenManager(cfg, logger)
			if err != nil {
				return err
			}
			source, err := manager.TokenSource(cmd.Context())
			if err != nil {
				return err
			}
			client, err := drive.NewClient(cmd.Context(), source)
			if err != nil {
				return err
			}

			opts := workflow.Options{Replace: replace}
			if cmd.Flags().Changed("from-table") {
				opts.TableNumber = &fromTable
			}

			summary, err := workflow.NewRunner(cfg, client, logger).Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			writeSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&fromTable, "from-table", 0, "Read links only from the Nth table of the agenda (1-indexed, 0 scans the whole document)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete existing output folders with the same name before copying")
	return cmd
}
