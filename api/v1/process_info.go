package apiv1

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
)

// ProcessState is the wire form of a process state.
type ProcessState string

const (
	ProcessState_PROCESS_STATE_UNSPECIFIED ProcessState = "PROCESS_STATE_UNSPECIFIED"
	ProcessState_PROCESS_STATE_RUNNING     ProcessState = "PROCESS_STATE_RUNNING"
	ProcessState_PROCESS_STATE_STOPPED     ProcessState = "PROCESS_STATE_STOPPED"
)

// Struct field names.
const (
	fieldProcessIdentifier = "process_identifier"
	fieldCommandLine       = "command_line"
	fieldPid               = "pid"
	fieldState             = "state"
	fieldExitCode          = "exit_code"
	fieldStartTime         = "start_time"
	fieldEndTime           = "end_time"
)

// ProcessInfo is the decoded response of every ProcessRunnerService method.
// ExitCode and EndTime are nil while the process is running.
type ProcessInfo struct {
	ProcessIdentifier string
	CommandLine       string
	Pid               int
	State             ProcessState
	ExitCode          *int32
	StartTime         time.Time
	EndTime           *time.Time
}

// ToStruct encodes info. Timestamps are RFC 3339 strings.
func (info *ProcessInfo) ToStruct() *structpb.Struct {
	fields := map[string]*structpb.Value{
		fieldProcessIdentifier: structpb.NewStringValue(info.ProcessIdentifier),
		fieldCommandLine:       structpb.NewStringValue(info.CommandLine),
		fieldPid:               structpb.NewNumberValue(float64(info.Pid)),
		fieldState:             structpb.NewStringValue(string(info.State)),
	}
	if !info.StartTime.IsZero() {
		fields[fieldStartTime] = structpb.NewStringValue(info.StartTime.UTC().Format(time.RFC3339Nano))
	}
	if info.ExitCode != nil {
		fields[fieldExitCode] = structpb.NewNumberValue(float64(*info.ExitCode))
	}
	if info.EndTime != nil {
		fields[fieldEndTime] = structpb.NewStringValue(info.EndTime.UTC().Format(time.RFC3339Nano))
	}
	return &structpb.Struct{Fields: fields}
}

// ProcessInfoFromStruct decodes a response Struct. Missing optional fields
// are left unset.
func ProcessInfoFromStruct(s *structpb.Struct) (*ProcessInfo, error) {
	if s == nil {
		return nil, fmt.Errorf("empty process response")
	}
	fields := s.GetFields()

	info := &ProcessInfo{
		ProcessIdentifier: fields[fieldProcessIdentifier].GetStringValue(),
		CommandLine:       fields[fieldCommandLine].GetStringValue(),
		Pid:               int(fields[fieldPid].GetNumberValue()),
		State:             ProcessState(fields[fieldState].GetStringValue()),
	}
	if info.State == "" {
		info.State = ProcessState_PROCESS_STATE_UNSPECIFIED
	}

	if v, ok := fields[fieldExitCode]; ok {
		code := int32(v.GetNumberValue())
		info.ExitCode = &code
	}

	if v, ok := fields[fieldStartTime]; ok {
		t, err := time.Parse(time.RFC3339Nano, v.GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", fieldStartTime, err)
		}
		info.StartTime = t
	}
	if v, ok := fields[fieldEndTime]; ok {
		t, err := time.Parse(time.RFC3339Nano, v.GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", fieldEndTime, err)
		}
		info.EndTime = &t
	}

	return info, nil
}
