package main

import (
	"fmt"
	"io"
	"strings"

	apiv1 "github.com/SanjoDeundiak/child-process/api/v1"
)

func stateLabel(s apiv1.ProcessState) string {
	switch s {
	case apiv1.ProcessState_PROCESS_STATE_RUNNING:
		return "Running"
	case apiv1.ProcessState_PROCESS_STATE_STOPPED:
		return "Stopped"
	default:
		return "Unknown"
	}
}

func printStatusTable(w io.Writer, info *apiv1.ProcessInfo) {
	id := info.ProcessIdentifier
	state := stateLabel(info.State)
	pid := fmt.Sprint(info.Pid)
	exit := "-"
	if info.ExitCode != nil {
		exit = fmt.Sprint(*info.ExitCode)
	}
	cmd := strings.TrimSpace(info.CommandLine)

	// Determine column widths
	idW := maxInt(36, len(id))
	stateW := maxInt(7, len(state))
	pidW := maxInt(5, len(pid))
	exitW := maxInt(4, len(exit))
	cmdW := maxInt(7, len(cmd))

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+-%s-+\n",
		strings.Repeat("-", idW), strings.Repeat("-", stateW), strings.Repeat("-", pidW),
		strings.Repeat("-", exitW), strings.Repeat("-", cmdW))
	fmt.Fprint(w, sep)
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", pad("ID", idW), pad("STATE", stateW), pad("PID", pidW), pad("EXIT", exitW), pad("COMMAND", cmdW))
	fmt.Fprint(w, sep)
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", pad(id, idW), pad(state, stateW), pad(pid, pidW), pad(exit, exitW), pad(cmd, cmdW))
	fmt.Fprint(w, sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
