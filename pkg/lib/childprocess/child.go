package childprocess

import (
	"runtime"
	"sync"
)

type childState int

const (
	// stateRunning: handles are open, the exit status may not be collected yet.
	stateRunning childState = iota
	// stateReleased: handles are closed. Terminal.
	stateReleased
)

// nativeHandles is the pair of OS handles a Child owns, together with the
// primitives that operate on them.
type nativeHandles interface {
	// poll checks for termination with a zero timeout.
	poll() (ExitStatus, bool, error)
	// block waits for termination with no timeout.
	block() error
	// exitStatus reads the exit code of a terminated process.
	exitStatus() (ExitStatus, error)
	terminate() error
	close() error
}

// Child is a handle to a spawned process. It exclusively owns the native
// process and primary thread handles.
//
// Wait is the single cleanup path: it blocks until the process exits, reads
// the exit code and releases the handles. Close releases the handles without
// waiting and is meant for defer. A Child that is dropped while still running
// has its handles closed by a runtime cleanup; the process itself is left running.
//
// Kill and TryWait may be called while another goroutine is blocked in Wait.
// Calling Wait or Close concurrently with Wait is not supported.
type Child struct {
	pid int

	mu      sync.RWMutex
	state   childState
	handles nativeHandles
	cleanup runtime.Cleanup
}

// droppedChild is what the cleanup of an unreachable Child gets to see. It
// must not reference the Child itself.
type droppedChild struct {
	pid     int
	handles nativeHandles
}

func newChild(pid int, handles nativeHandles) *Child {
	child := &Child{
		pid:     pid,
		state:   stateRunning,
		handles: handles,
	}
	child.cleanup = runtime.AddCleanup(child, closeDropped, droppedChild{pid: pid, handles: handles})
	return child
}

// ID returns the process identifier captured at spawn time.
func (child *Child) ID() int {
	return child.pid
}

// TryWait polls the process without blocking. done is false while the process
// is running. Once it has exited, every call returns the same status. TryWait
// never releases the handles.
func (child *Child) TryWait() (status ExitStatus, done bool, err error) {
	child.mu.RLock()
	defer child.mu.RUnlock()

	if child.state == stateReleased {
		return ExitStatus{}, false, &WaitError{Op: "poll", Err: ErrReleased}
	}

	return child.handles.poll()
}

// Wait blocks until the process exits, returns its exit status and releases
// the native handles. Any later call fails with ErrReleased.
func (child *Child) Wait() (ExitStatus, error) {
	child.mu.RLock()
	released := child.state == stateReleased
	child.mu.RUnlock()
	if released {
		return ExitStatus{}, &WaitError{Op: "wait", Err: ErrReleased}
	}

	// Not under the lock: Kill has to be able to run while this blocks.
	if err := child.handles.block(); err != nil {
		return ExitStatus{}, err
	}

	child.mu.Lock()
	defer child.mu.Unlock()

	if child.state == stateReleased {
		return ExitStatus{}, &WaitError{Op: "wait", Err: ErrReleased}
	}

	status, err := child.handles.exitStatus()
	if closeErr := child.releaseLocked(); closeErr != nil {
		logger.Printf("Failed to close handles of pid %d: %v", child.pid, closeErr)
	}
	if err != nil {
		return ExitStatus{}, err
	}

	logger.Printf("Process %d exited with %v", child.pid, status)
	return status, nil
}

// Kill terminates the process immediately. It neither waits for the process
// to exit nor releases the handles; call Wait afterwards to reap it.
func (child *Child) Kill() error {
	child.mu.RLock()
	defer child.mu.RUnlock()

	if child.state == stateReleased {
		return &KillError{Err: ErrReleased}
	}

	logger.Printf("Killing process %d", child.pid)
	return child.handles.terminate()
}

// Close releases the native handles without waiting for the process. The
// process keeps running and is reaped by the OS. Close on a released Child
// is a no-op.
func (child *Child) Close() error {
	child.mu.Lock()
	defer child.mu.Unlock()

	if child.state == stateReleased {
		return nil
	}

	return child.releaseLocked()
}

func (child *Child) releaseLocked() error {
	child.state = stateReleased
	child.cleanup.Stop()
	return child.handles.close()
}

// closeDropped only closes the handles. The process is left to the OS.
func closeDropped(dropped droppedChild) {
	if err := dropped.handles.close(); err != nil {
		logger.Printf("Failed to close handles of dropped pid %d: %v", dropped.pid, err)
	}
}
