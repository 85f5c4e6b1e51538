package childprocess

import "fmt"

// ExitStatus is the exit code reported by a terminated child.
type ExitStatus struct {
	raw uint32
}

func NewExitStatus(raw uint32) ExitStatus {
	return ExitStatus{raw: raw}
}

// Success reports whether the child exited with code 0.
func (status ExitStatus) Success() bool {
	return status.raw == 0
}

// Code returns the exit code as a signed value. Codes above 0x7FFFFFFF,
// such as NTSTATUS failures, come out negative.
func (status ExitStatus) Code() int32 {
	return int32(status.raw)
}

// Raw returns the exit code exactly as reported by the OS.
func (status ExitStatus) Raw() uint32 {
	return status.raw
}

func (status ExitStatus) String() string {
	if status.raw > 0x7FFFFFFF {
		return fmt.Sprintf("exit status %#x", status.raw)
	}
	return fmt.Sprintf("exit status %d", status.raw)
}
