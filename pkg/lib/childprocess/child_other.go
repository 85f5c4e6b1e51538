//go:build !windows

package childprocess

// Only the Windows backend is implemented. Spawn fails everywhere else, so no
// Child with live handles can exist on these platforms.
func spawn(commandLine string, _ bool, _ string) (*Child, error) {
	return nil, &SpawnError{CommandLine: commandLine, Err: ErrUnsupported}
}
