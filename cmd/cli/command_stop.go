package main

import (
	"context"
	"fmt"
	"time"

	apiv1 "github.com/SanjoDeundiak/child-process/api/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
)

func newStopCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop <process_id>",
		Short: "Kill a process and print its final status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processID := args[0]
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()

			conn, err := a.dial()
			if err != nil {
				return err
			}
			defer conn.Close()

			client := apiv1.NewProcessRunnerServiceClient(conn)
			info, err := client.Stop(ctx, processID)
			if err != nil {
				if grpcCode(err) == codes.PermissionDenied {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Forbidden. Only the creator of the process can stop it.")
					return nil
				}
				return err
			}
			// Print the status and process returned by Stop directly
			printStatusTable(cmd.OutOrStdout(), info)
			return nil
		},
	}
	return cmd
}
