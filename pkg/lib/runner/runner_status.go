package runner

import (
	"context"
	"os"

	"github.com/SanjoDeundiak/child-process/pkg/lib"
)

type StatusResult struct {
	Process *lib.Process
	Status  *lib.ProcessStatus
}

// Status returns the current process and status by identifier.
func (runner *Runner) Status(id string) (*StatusResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}

	status := pe.lockAndGetStatus()
	result := StatusResult{
		Process: &pe.process,
		Status:  &status,
	}

	return &result, nil
}

// Wait blocks until the process has stopped or ctx is done.
func (runner *Runner) Wait(ctx context.Context, id string) (*StatusResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}

	select {
	case <-pe.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	status := pe.lockAndGetStatus()
	return &StatusResult{Process: &pe.process, Status: &status}, nil
}

func (runner *Runner) getProcess(id string) (*processEntry, error) {
	runner.mu.RLock()
	pe := runner.processes[id]
	runner.mu.RUnlock()
	if pe == nil {
		return nil, os.ErrNotExist
	}
	return pe, nil
}

func (processEntry *processEntry) lockAndGetStatus() lib.ProcessStatus {
	processEntry.mu.RLock()
	defer processEntry.mu.RUnlock()

	st := lib.ProcessStatus{State: processEntry.state, StartTime: processEntry.start}
	if processEntry.exitCode != nil {
		st.ExitCode = new(int32)
		*st.ExitCode = *processEntry.exitCode
	}
	if processEntry.end != nil {
		t := *processEntry.end
		st.EndTime = &t
	}
	return st
}
