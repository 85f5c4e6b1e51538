package main

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/SanjoDeundiak/child-process/pkg/lib/childprocess"
	"github.com/spf13/cobra"
)

// exitCodeError makes the CLI exit with the code of the child it ran.
type exitCodeError struct {
	status childprocess.ExitStatus
}

func (e *exitCodeError) Error() string {
	return e.status.String()
}

func newRunCmd() *cobra.Command {
	var (
		dir       string
		noInherit bool
		killAfter time.Duration
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- <command line>",
		Short: "Run a process locally, wait for it and exit with its exit code",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required; use -- to separate CLI flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				childprocess.SetLogger(log.New(cmd.ErrOrStderr(), "", log.LstdFlags))
			}

			command := childprocess.New(strings.Join(args, " ")).
				InheritHandles(!noInherit).
				CurrentDirectory(dir)

			var status childprocess.ExitStatus
			var err error
			if killAfter > 0 {
				status, err = runWithDeadline(command, killAfter)
			} else {
				status, err = command.Status()
			}
			if err != nil {
				return err
			}

			if !status.Success() {
				return &exitCodeError{status: status}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "working directory of the process (default: current directory)")
	cmd.Flags().BoolVar(&noInherit, "no-inherit", false, "do not pass inheritable handles to the process")
	cmd.Flags().DurationVar(&killAfter, "kill-after", 0, "kill the process if it is still running after this long")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log process lifecycle to stderr")
	return cmd
}

// runWithDeadline waits for the child, killing it once d has elapsed.
func runWithDeadline(command *childprocess.Command, d time.Duration) (childprocess.ExitStatus, error) {
	child, err := command.Spawn()
	if err != nil {
		return childprocess.ExitStatus{}, err
	}

	timer := time.AfterFunc(d, func() {
		// Fails harmlessly if the child already exited or was reaped
		_ = child.Kill()
	})
	defer timer.Stop()

	return child.Wait()
}
