package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "prn",
		Short:         "Child process runner CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "file with PRN_* variables, loaded if present")

	root.AddCommand(newStartCmd(a))
	root.AddCommand(newStatusCmd(a))
	root.AddCommand(newStopCmd(a))
	root.AddCommand(newRunCmd())

	return root
}
