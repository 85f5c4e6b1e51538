package childprocess

// Command accumulates the configuration of a child process.
//
// The command line is handed to the OS verbatim. No splitting or quoting is
// done here: the OS decides which part names the executable, and appends the
// default executable extension when the first token has none.
type Command struct {
	commandLine    string
	inheritHandles bool
	dir            string
}

// New returns a Command for commandLine. Inheritable handles are passed to the
// child by default and the working directory is inherited from the caller.
func New(commandLine string) *Command {
	return &Command{
		commandLine:    commandLine,
		inheritHandles: true,
	}
}

// InheritHandles sets whether inheritable handles of the calling process are
// inherited by the child.
func (command *Command) InheritHandles(inherit bool) *Command {
	command.inheritHandles = inherit
	return command
}

// CurrentDirectory sets the initial working directory of the child. An empty
// dir restores the default.
func (command *Command) CurrentDirectory(dir string) *Command {
	command.dir = dir
	return command
}

// CommandLine returns the command line exactly as given to New.
func (command *Command) CommandLine() string {
	return command.commandLine
}

// Dir returns the configured working directory, or "" when the child
// inherits the caller's.
func (command *Command) Dir() string {
	return command.dir
}

// InheritsHandles reports whether inheritable handles are passed to the child.
func (command *Command) InheritsHandles() bool {
	return command.inheritHandles
}

// Spawn creates the child process. On success the returned Child owns the
// native handles and the obligation to reap the process.
func (command *Command) Spawn() (*Child, error) {
	if command.commandLine == "" {
		return nil, &SpawnError{Err: errEmptyCommandLine}
	}

	logger.Printf("Spawning %q (inherit handles: %v, dir: %q)", command.commandLine, command.inheritHandles, command.dir)
	child, err := spawn(command.commandLine, command.inheritHandles, command.dir)
	if err != nil {
		logger.Printf("Failed to spawn %q: %v", command.commandLine, err)
		return nil, err
	}
	logger.Printf("Spawned %q as pid %d", command.commandLine, child.ID())

	return child, nil
}

// Status spawns the child, waits for it to exit and releases it. The first
// error encountered is returned together with a zero ExitStatus.
func (command *Command) Status() (ExitStatus, error) {
	child, err := command.Spawn()
	if err != nil {
		return ExitStatus{}, err
	}

	return child.Wait()
}
