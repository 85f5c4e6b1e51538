package lib

import "time"

// ProcessState mirrors the states exposed by the processrunner.v1 API.
type ProcessState int

const (
	ProcessStateUnspecified ProcessState = iota
	ProcessStateRunning
	ProcessStateStopped
)

func (s ProcessState) String() string {
	switch s {
	case ProcessStateRunning:
		return "Running"
	case ProcessStateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Process captures what a child was started with.
type Process struct {
	CommandLine string
	Dir         string
	Pid         int
}

// ProcessStatus captures runtime state and timestamps.
// ExitCode stays nil while running, and also when the exit code could not be read.
type ProcessStatus struct {
	State     ProcessState
	ExitCode  *int32
	StartTime time.Time
	EndTime   *time.Time
}
