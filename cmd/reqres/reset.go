package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"reqres/config"
	"reqres/internal/repository/memory"
)

func newResetCmd() *cobra.Command {
	var dataFile string
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the seed users in the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("data-file") {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dataFile = cfg.DataFile
			}
			if dataFile == "" {
				return errors.New("no data file: set DATA_FILE or pass --data-file")
			}
			store, err := memory.OpenUserStore(dataFile)
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reset %s\n", dataFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataFile, "data-file", "", "JSON file persisting the memory store (env DATA_FILE)")
	return cmd
}
