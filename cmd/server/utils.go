package main

import (
	apiv1 "github.com/SanjoDeundiak/child-process/api/v1"
	"github.com/SanjoDeundiak/child-process/pkg/lib"
	"google.golang.org/protobuf/types/known/structpb"
)

func toProcessStruct(id string, p *lib.Process, st *lib.ProcessStatus) *structpb.Struct {
	info := &apiv1.ProcessInfo{
		ProcessIdentifier: id,
		CommandLine:       p.CommandLine,
		Pid:               p.Pid,
		State:             toApiProcessState(st.State),
		StartTime:         st.StartTime,
	}
	if st.ExitCode != nil {
		code := *st.ExitCode
		info.ExitCode = &code
	}
	if st.EndTime != nil {
		t := *st.EndTime
		info.EndTime = &t
	}
	return info.ToStruct()
}

func toApiProcessState(s lib.ProcessState) apiv1.ProcessState {
	switch s {
	case lib.ProcessStateRunning:
		return apiv1.ProcessState_PROCESS_STATE_RUNNING
	case lib.ProcessStateStopped:
		return apiv1.ProcessState_PROCESS_STATE_STOPPED
	default:
		return apiv1.ProcessState_PROCESS_STATE_UNSPECIFIED
	}
}
