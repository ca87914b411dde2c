package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"setlister/internal/logging"
	"setlister/internal/services/drive"
)

func newAuthCommand(cctx *commandContext) *cobra.Command {
	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Drive authorization",
	}

	authCmd.AddCommand(newAuthLoginCommand(cctx))
	authCmd.AddCommand(newAuthStatusCommand(cctx))

	return authCmd
}

func newAuthLoginCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Run the interactive authorization flow and cache the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.loadConfig("")
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
			if err := manager.Authorize(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Authorization complete. Token cached at %s\n", cfg.Auth.TokenFile)
			return nil
		},
	}
}

func newAuthStatusCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of the cached token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.loadConfig("")
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
			status, err := manager.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !status.HasToken:
				fmt.Fprintln(out, "No cached authorization. Run 'setlister auth login' to authorize.")
			case status.Valid:
				fmt.Fprintf(out, "Authorized. Token valid until %s.\n", status.Expiry.Format(time.RFC1123))
			case status.Refreshable:
				fmt.Fprintln(out, "Authorized. Access token expired but will refresh on the next run.")
			default:
				fmt.Fprintln(out, "Cached token expired and cannot refresh. Run 'setlister auth login' again.")
			}
			return nil
		},
	}
}
