//go:build windows

package childprocess

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ping waits about one second between echoes.
func sleepCommand(seconds int) string {
	return "ping -n " + strconv.Itoa(seconds+1) + " 127.0.0.1"
}

func waitWithTimeout(t *testing.T, child *Child, d time.Duration) ExitStatus {
	t.Helper()
	type result struct {
		status ExitStatus
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := child.Wait()
		done <- result{status, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("Wait failed: %v", r.err)
		}
		return r.status
	case <-time.After(d):
		t.Fatalf("Wait did not return within %v", d)
	}
	return ExitStatus{}
}

func TestStatus_ExitCodes(t *testing.T) {
	for _, code := range []int32{0, 1, 3, 42} {
		status, err := New(`cmd /c exit ` + strconv.Itoa(int(code))).Status()
		if err != nil {
			t.Fatalf("Status failed: %v", err)
		}
		if status.Code() != code {
			t.Fatalf("expected code %d, got %d", code, status.Code())
		}
		if status.Success() != (code == 0) {
			t.Fatalf("unexpected success %v for code %d", status.Success(), code)
		}
	}
}

func TestStatus_NegativeExitCode(t *testing.T) {
	status, err := New(`cmd /c exit -1`).Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Code() != -1 || status.Raw() != 0xFFFFFFFF {
		t.Fatalf("expected -1, got %d (raw %#x)", status.Code(), status.Raw())
	}
}

func TestSpawn_NonexistentExecutable(t *testing.T) {
	child, err := New(`this-executable-does-not-exist-7f3a.exe`).Spawn()
	if err == nil {
		_ = child.Close()
		t.Fatalf("expected spawn to fail")
	}
	if child != nil {
		t.Fatalf("expected no child on error")
	}

	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected *SpawnError, got %T", err)
	}
	code, ok := spawnErr.Code()
	if !ok {
		t.Fatalf("expected native error code")
	}
	if windows.Errno(code) != windows.ERROR_FILE_NOT_FOUND {
		t.Fatalf("expected ERROR_FILE_NOT_FOUND, got %d", code)
	}
}

func TestSpawn_NulInCommandLine(t *testing.T) {
	_, err := New("cmd\x00 /c exit 0").Spawn()
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected *SpawnError, got %v", err)
	}
}

func TestTryWait_RunningThenExited(t *testing.T) {
	child, err := New(sleepCommand(2)).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer child.Close()

	if _, done, err := child.TryWait(); err != nil || done {
		t.Fatalf("expected running process, got done=%v err=%v", done, err)
	}

	deadline := time.Now().Add(10 * time.Second)
	var status ExitStatus
	for {
		var done bool
		status, done, err = child.TryWait()
		if err != nil {
			t.Fatalf("TryWait failed: %v", err)
		}
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("process did not exit in time")
		}
		time.Sleep(50 * time.Millisecond)
	}
	if !status.Success() {
		t.Fatalf("expected success, got %v", status)
	}

	// Repeated polls read the same code.
	for i := 0; i < 3; i++ {
		again, done, err := child.TryWait()
		if err != nil || !done || again != status {
			t.Fatalf("poll #%d: status=%v done=%v err=%v", i, again, done, err)
		}
	}

	final, err := child.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if final != status {
		t.Fatalf("Wait returned %v, TryWait returned %v", final, status)
	}
}

func TestWait_Twice(t *testing.T) {
	child, err := New(`cmd /c exit 7`).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	status, err := child.Wait()
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if status.Code() != 7 {
		t.Fatalf("expected code 7, got %d", status.Code())
	}

	second, err := child.Wait()
	if !errors.Is(err, ErrReleased) {
		t.Fatalf("expected ErrReleased on second Wait, got status=%v err=%v", second, err)
	}
	if _, _, err := child.TryWait(); !errors.Is(err, ErrReleased) {
		t.Fatalf("expected ErrReleased from TryWait, got %v", err)
	}
	if err := child.Kill(); !errors.Is(err, ErrReleased) {
		t.Fatalf("expected ErrReleased from Kill, got %v", err)
	}
}

func TestKill_ThenWait(t *testing.T) {
	child, err := New(sleepCommand(60)).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	if err := child.Kill(); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}

	status := waitWithTimeout(t, child, 5*time.Second)
	if status.Success() {
		t.Fatalf("expected killed process not to succeed")
	}
	if status.Code() != killExitCode {
		t.Fatalf("expected code %d, got %d", killExitCode, status.Code())
	}
}

func TestKill_WhileWaiting(t *testing.T) {
	child, err := New(sleepCommand(60)).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	done := make(chan ExitStatus, 1)
	go func() {
		status, err := child.Wait()
		if err != nil {
			t.Errorf("Wait failed: %v", err)
		}
		done <- status
	}()

	time.Sleep(100 * time.Millisecond)
	if err := child.Kill(); err != nil && !errors.Is(err, ErrReleased) {
		t.Fatalf("Kill failed: %v", err)
	}

	select {
	case status := <-done:
		if status.Success() {
			t.Fatalf("expected killed process not to succeed")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Wait did not observe the kill")
	}
}

func TestKill_ExitedProcess(t *testing.T) {
	child, err := New(`cmd /c exit 0`).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	defer child.Close()

	deadline := time.Now().Add(5 * time.Second)
	for {
		_, done, err := child.TryWait()
		if err != nil {
			t.Fatalf("TryWait failed: %v", err)
		}
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("process did not exit in time")
		}
		time.Sleep(20 * time.Millisecond)
	}

	// Terminating an exited process fails with access denied; the error is surfaced.
	err = child.Kill()
	var killErr *KillError
	if !errors.As(err, &killErr) {
		t.Fatalf("expected *KillError, got %v", err)
	}
}

func TestID_Stable(t *testing.T) {
	child, err := New(sleepCommand(60)).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}

	pid := child.ID()
	if pid <= 0 {
		t.Fatalf("expected positive pid, got %d", pid)
	}
	if err := child.Kill(); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}
	if child.ID() != pid {
		t.Fatalf("pid changed after Kill")
	}
	waitWithTimeout(t, child, 5*time.Second)
	if child.ID() != pid {
		t.Fatalf("pid changed after Wait")
	}
}

func TestCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	status, err := New(`cmd /c if exist marker.txt (exit 0) else (exit 1)`).CurrentDirectory(dir).Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.Success() {
		t.Fatalf("child did not start in %s", dir)
	}
}

func TestCurrentDirectory_Missing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := New(`cmd /c exit 0`).CurrentDirectory(dir).Spawn()
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected *SpawnError, got %v", err)
	}
	if _, ok := spawnErr.Code(); !ok {
		t.Fatalf("expected native error code")
	}
}

func TestInheritHandles_Disabled(t *testing.T) {
	status, err := New(`cmd /c exit 5`).InheritHandles(false).Status()
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if status.Code() != 5 {
		t.Fatalf("expected code 5, got %d", status.Code())
	}
}

func TestClose_LeavesProcessRunning(t *testing.T) {
	child, err := New(sleepCommand(60)).Spawn()
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	pid := child.ID()

	if err := child.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := child.Wait(); !errors.Is(err, ErrReleased) {
		t.Fatalf("expected ErrReleased after Close, got %v", err)
	}

	h, err := windows.OpenProcess(windows.SYNCHRONIZE|windows.PROCESS_TERMINATE, false, uint32(pid))
	if err != nil {
		t.Fatalf("process %d is gone after Close: %v", pid, err)
	}
	defer windows.CloseHandle(h)

	event, err := windows.WaitForSingleObject(h, 0)
	if err != nil {
		t.Fatalf("WaitForSingleObject: %v", err)
	}
	if event != waitTimeout {
		t.Fatalf("expected process %d to keep running", pid)
	}
	_ = windows.TerminateProcess(h, 1)
}

func TestDrop_ClosesHandles(t *testing.T) {
	var before uint32
	if err := getProcessHandleCount(&before); err != nil {
		t.Skipf("GetProcessHandleCount unavailable: %v", err)
	}

	var pids []int
	for i := 0; i < 10; i++ {
		child, err := New(sleepCommand(60)).Spawn()
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
		pids = append(pids, child.ID())
	}
	defer func() {
		for _, pid := range pids {
			if h, err := windows.OpenProcess(windows.PROCESS_TERMINATE, false, uint32(pid)); err == nil {
				_ = windows.TerminateProcess(h, 1)
				_ = windows.CloseHandle(h)
			}
		}
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		runtime.GC()
		time.Sleep(20 * time.Millisecond)
		var after uint32
		if err := getProcessHandleCount(&after); err != nil {
			t.Fatalf("GetProcessHandleCount: %v", err)
		}
		// Slack for handles the runtime opens lazily.
		if after <= before+2 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("handle count did not return to baseline: before=%d after=%d", before, after)
		}
	}
}

var procGetProcessHandleCount = windows.NewLazySystemDLL("kernel32.dll").NewProc("GetProcessHandleCount")

func getProcessHandleCount(count *uint32) error {
	if err := procGetProcessHandleCount.Find(); err != nil {
		return err
	}
	r, _, err := procGetProcessHandleCount.Call(uintptr(windows.CurrentProcess()), uintptr(unsafe.Pointer(count)))
	if r == 0 {
		return err
	}
	return nil
}
