package runner

import (
	"errors"
	"time"

	"github.com/SanjoDeundiak/child-process/pkg/lib"
	"github.com/SanjoDeundiak/child-process/pkg/lib/childprocess"
)

// How long Stop waits for the waiter to observe the kill.
const stopTimeout = 1 * time.Second

// StopResult returns process info and its final status after Stop.
type StopResult struct {
	Process *lib.Process
	Status  *lib.ProcessStatus
}

// Stop kills the process by identifier and returns final status (or current if already stopped).
func (runner *Runner) Stop(id string) (*StopResult, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, err
	}
	res := StopResult{Process: &pe.process}

	select {
	case <-pe.done:
		st := pe.lockAndGetStatus()
		res.Status = &st
		return &res, nil
	default:
	}

	// ErrReleased means the waiter already reaped the process
	killErr := pe.child.Kill()
	if errors.Is(killErr, childprocess.ErrReleased) {
		killErr = nil
	}

	// A failed kill can still race with the process exiting on its own
	select {
	case <-pe.done:
		if killErr != nil {
			logger.Printf("Kill of process %s failed but it exited anyway: %v", id, killErr)
		}
	case <-time.After(stopTimeout):
		if killErr != nil {
			logger.Printf("Failed to kill process %s: %v", id, killErr)
			return nil, killErr
		}
		logger.Printf("Process %s did not stop within %v", id, stopTimeout)
	}

	st := pe.lockAndGetStatus()
	res.Status = &st

	return &res, nil
}
