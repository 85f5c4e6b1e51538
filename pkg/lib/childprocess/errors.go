package childprocess

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	// ErrReleased is returned by operations on a Child whose native handles
	// have already been closed.
	ErrReleased = errors.New("child process handles already released")

	// ErrUnsupported is returned by Spawn on platforms without a native backend.
	ErrUnsupported = errors.New("process creation is not supported on this platform")

	errEmptyCommandLine = errors.New("command line is required")
)

// SpawnError reports a failed process creation.
type SpawnError struct {
	CommandLine string
	Err         error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("cannot create child process %q: %v", e.CommandLine, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Code returns the native error code, if the failure came from the OS.
func (e *SpawnError) Code() (uint32, bool) { return nativeCode(e.Err) }

// WaitError reports a failure of the wait or exit-code primitives. Op is one
// of "poll", "wait" or "exit code".
type WaitError struct {
	Op  string
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("cannot %s: %v", e.Op, e.Err)
}

func (e *WaitError) Unwrap() error { return e.Err }

func (e *WaitError) Code() (uint32, bool) { return nativeCode(e.Err) }

// KillError reports a failure to terminate the child.
type KillError struct {
	Err error
}

func (e *KillError) Error() string {
	return fmt.Sprintf("cannot kill process: %v", e.Err)
}

func (e *KillError) Unwrap() error { return e.Err }

func (e *KillError) Code() (uint32, bool) { return nativeCode(e.Err) }

func nativeCode(err error) (uint32, bool) {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno), true
	}
	return 0, false
}
