package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newClearCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Empty the clipboard",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			sys, err := setup(v)
			if err != nil {
				return err
			}
			return sys.Clear()
		},
	}

	addCommonFlags(cmd)

	return cmd
}
