package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apiv1 "github.com/SanjoDeundiak/child-process/api/v1"
	"github.com/spf13/cobra"
)

func newStartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start -- <command line>",
		Short: "Start a new process on the server",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required; use -- to separate CLI flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			conn, err := a.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewProcessRunnerServiceClient(conn)
			info, err := client.Start(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			// Print only process ID as per design
			fmt.Fprintln(cmd.OutOrStdout(), info.ProcessIdentifier)
			return nil
		},
	}
	return cmd
}
