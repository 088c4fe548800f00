package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/louisbranch/playtrack/internal/id"
)

func newGenIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genid",
		Short: "Generate a fresh session identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, err := id.NewID()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sessionID)
			return nil
		},
	}
}
