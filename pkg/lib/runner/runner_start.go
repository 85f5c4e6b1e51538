package runner

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/SanjoDeundiak/child-process/pkg/lib"
)

type StartResult struct {
	ID      string
	Process *lib.Process
	Status  *lib.ProcessStatus
}

// Start starts a new process, returning its generated identifier and initial status.
func (runner *Runner) Start(commandLine string) (*StartResult, error) {
	if commandLine == "" {
		return nil, errors.New("command is required")
	}
	processId := lib.NewProcessID()
	workDir := filepath.Join(runner.baseDir, processId)
	if err := os.MkdirAll(workDir, 0o700); err != nil {
		return nil, err
	}
	// Note that this folder is not removed once the process exits

	logger.Printf("Starting process %s: %s", processId, commandLine)
	child, err := runner.spawn(commandLine, workDir)
	if err != nil {
		logger.Printf("Failed to start process %s: %v", processId, err)
		_ = os.Remove(workDir)
		return nil, err
	}

	processEntry := &processEntry{
		id:      processId,
		process: lib.Process{CommandLine: commandLine, Dir: workDir, Pid: child.ID()},
		child:   child,
		workDir: workDir,
		state:   lib.ProcessStateRunning,
		start:   time.Now(),
		done:    make(chan struct{}),
	}

	// Waiter
	go processEntry.reap()

	runner.mu.Lock()
	runner.processes[processId] = processEntry
	runner.mu.Unlock()

	status := processEntry.lockAndGetStatus()

	return &StartResult{ID: processId, Process: &processEntry.process, Status: &status}, nil
}

func (processEntry *processEntry) reap() {
	logger.Printf("Waiting for process %s to finish", processEntry.id)

	exitStatus, err := processEntry.child.Wait()
	if err != nil {
		logger.Printf("Process %s finished with err: %s", processEntry.id, err)
	} else {
		logger.Printf("Process %s finished with %v", processEntry.id, exitStatus)
	}

	processEntry.mu.Lock()
	if err == nil {
		code := exitStatus.Code()
		processEntry.exitCode = &code
	}
	// On error the exit code is unknown and stays nil
	now := time.Now()
	processEntry.end = &now
	processEntry.state = lib.ProcessStateStopped
	processEntry.mu.Unlock()

	close(processEntry.done)
}
