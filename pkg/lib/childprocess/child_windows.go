//go:build windows

package childprocess

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	// The child does not inherit the console of the caller.
	creationFlags = windows.DETACHED_PROCESS

	// Exit code reported for a process terminated by Kill.
	killExitCode = 1

	waitTimeout = 0x00000102
)

type windowsHandles struct {
	process windows.Handle
	thread  windows.Handle
}

func spawn(commandLine string, inheritHandles bool, dir string) (*Child, error) {
	// CreateProcessW may modify the command line buffer, so it gets its own copy.
	argv, err := windows.UTF16PtrFromString(commandLine)
	if err != nil {
		return nil, &SpawnError{CommandLine: commandLine, Err: err}
	}

	var cwd *uint16
	if dir != "" {
		cwd, err = windows.UTF16PtrFromString(dir)
		if err != nil {
			return nil, &SpawnError{CommandLine: commandLine, Err: err}
		}
	}

	si := new(windows.StartupInfo)
	si.Cb = uint32(unsafe.Sizeof(*si))
	pi := new(windows.ProcessInformation)

	err = windows.CreateProcess(nil, argv, nil, nil, inheritHandles, creationFlags, nil, cwd, si, pi)
	if err != nil {
		return nil, &SpawnError{CommandLine: commandLine, Err: err}
	}

	return newChild(int(pi.ProcessId), windowsHandles{process: pi.Process, thread: pi.Thread}), nil
}

func (handles windowsHandles) poll() (ExitStatus, bool, error) {
	event, err := windows.WaitForSingleObject(handles.process, 0)
	if err != nil {
		return ExitStatus{}, false, &WaitError{Op: "poll", Err: err}
	}

	switch event {
	case windows.WAIT_OBJECT_0:
		status, err := handles.exitStatus()
		if err != nil {
			return ExitStatus{}, false, err
		}
		return status, true, nil
	case waitTimeout:
		return ExitStatus{}, false, nil
	default:
		return ExitStatus{}, false, &WaitError{Op: "poll", Err: fmt.Errorf("unexpected wait result %#x", event)}
	}
}

func (handles windowsHandles) block() error {
	event, err := windows.WaitForSingleObject(handles.process, windows.INFINITE)
	if err != nil {
		return &WaitError{Op: "wait", Err: err}
	}
	if event != windows.WAIT_OBJECT_0 {
		return &WaitError{Op: "wait", Err: fmt.Errorf("unexpected wait result %#x", event)}
	}
	return nil
}

// exitStatus is only meaningful once the process handle is signaled.
func (handles windowsHandles) exitStatus() (ExitStatus, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(handles.process, &code); err != nil {
		return ExitStatus{}, &WaitError{Op: "exit code", Err: err}
	}
	return NewExitStatus(code), nil
}

func (handles windowsHandles) terminate() error {
	if err := windows.TerminateProcess(handles.process, killExitCode); err != nil {
		return &KillError{Err: err}
	}
	return nil
}

func (handles windowsHandles) close() error {
	return errors.Join(
		windows.CloseHandle(handles.thread),
		windows.CloseHandle(handles.process),
	)
}
