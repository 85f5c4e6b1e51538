package runner

import (
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/SanjoDeundiak/child-process/pkg/lib"
	"github.com/SanjoDeundiak/child-process/pkg/lib/childprocess"
)

var logger = log.New(io.Discard, "runner: ", log.LstdFlags)

// SetLogger replaces the package logger. Logging is discarded by default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}

// Process is the part of a spawned child the runner relies on.
// *childprocess.Child implements it.
type Process interface {
	ID() int
	Wait() (childprocess.ExitStatus, error)
	Kill() error
}

// SpawnFunc starts commandLine with dir as its working directory.
type SpawnFunc func(commandLine, dir string) (Process, error)

func spawnChild(commandLine, dir string) (Process, error) {
	child, err := childprocess.New(commandLine).CurrentDirectory(dir).Spawn()
	if err != nil {
		return nil, err
	}
	return child, nil
}

// Runner manages processes started by this library. Every child is reaped by
// its own waiter goroutine.
type Runner struct {
	mu        sync.RWMutex
	processes map[string]*processEntry
	baseDir   string
	spawn     SpawnFunc
}

type processEntry struct {
	id      string
	process lib.Process
	child   Process
	workDir string

	// status fields
	mu       sync.RWMutex
	state    lib.ProcessState
	exitCode *int32
	start    time.Time
	end      *time.Time
	// closed by the waiter once the status is final
	done chan struct{}
}

// NewRunner creates a new Runner backed by childprocess.
func NewRunner() (*Runner, error) {
	return NewRunnerWithSpawner(spawnChild)
}

// NewRunnerWithSpawner creates a Runner that starts children with spawn.
func NewRunnerWithSpawner(spawn SpawnFunc) (*Runner, error) {
	baseDir, err := os.MkdirTemp("", "prn-*")
	if err != nil {
		return nil, err
	}

	return &Runner{processes: make(map[string]*processEntry), baseDir: baseDir, spawn: spawn}, nil
}

// BaseDir is the directory that holds the per-process working directories.
func (runner *Runner) BaseDir() string {
	return runner.baseDir
}
