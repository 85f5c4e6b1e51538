package main

import (
	"bytes"
	"strings"
	"testing"

	apiv1 "github.com/SanjoDeundiak/child-process/api/v1"
)

func TestPrintStatusTable(t *testing.T) {
	code := int32(3)
	info := &apiv1.ProcessInfo{
		ProcessIdentifier: "0b9d2c2e-6b1f-4a43-9a39-6f6f3b0c1d2e",
		CommandLine:       `cmd /c exit 3`,
		Pid:               4242,
		State:             apiv1.ProcessState_PROCESS_STATE_STOPPED,
		ExitCode:          &code,
	}

	var buf bytes.Buffer
	printStatusTable(&buf, info)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), buf.String())
	}
	for _, line := range lines {
		if len(line) != len(lines[0]) {
			t.Fatalf("misaligned table:\n%s", buf.String())
		}
	}
	row := lines[3]
	for _, want := range []string{info.ProcessIdentifier, "Stopped", "4242", "3", "cmd /c exit 3"} {
		if !strings.Contains(row, want) {
			t.Fatalf("row %q is missing %q", row, want)
		}
	}
}

func TestPrintStatusTable_Running(t *testing.T) {
	var buf bytes.Buffer
	printStatusTable(&buf, &apiv1.ProcessInfo{ProcessIdentifier: "id", State: apiv1.ProcessState_PROCESS_STATE_RUNNING})

	if !strings.Contains(buf.String(), "Running") {
		t.Fatalf("expected Running state:\n%s", buf.String())
	}
	if !strings.Contains(strings.Split(buf.String(), "\n")[3], " - ") {
		t.Fatalf("expected placeholder exit code:\n%s", buf.String())
	}
}
