package childprocess

import (
	"sync"
	"sync/atomic"
)

// fakeHandles stands in for the OS handles. The process "exits" when exit or
// terminate is called.
type fakeHandles struct {
	mu     sync.Mutex
	exited bool
	code   uint32
	exitCh chan struct{}

	closed     atomic.Int32
	terminated atomic.Int32
}

func newFakeHandles() *fakeHandles {
	return &fakeHandles{exitCh: make(chan struct{})}
}

func (h *fakeHandles) exit(code uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exited {
		return
	}
	h.exited = true
	h.code = code
	close(h.exitCh)
}

func (h *fakeHandles) poll() (ExitStatus, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.exited {
		return ExitStatus{}, false, nil
	}
	return NewExitStatus(h.code), true, nil
}

func (h *fakeHandles) block() error {
	<-h.exitCh
	return nil
}

func (h *fakeHandles) exitStatus() (ExitStatus, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return NewExitStatus(h.code), nil
}

func (h *fakeHandles) terminate() error {
	h.terminated.Add(1)
	h.exit(1)
	return nil
}

func (h *fakeHandles) close() error {
	h.closed.Add(1)
	return nil
}
