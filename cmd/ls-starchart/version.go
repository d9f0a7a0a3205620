package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-starchart/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ls-starchart %s\n", version.Version)
		},
	}
}
