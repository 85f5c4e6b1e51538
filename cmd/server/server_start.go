package main

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *ProcessRunnerServiceServer) Start(ctx context.Context, request *wrapperspb.StringValue) (*structpb.Struct, error) {
	commandLine := request.GetValue()
	logger.Printf("Starting process: %s", commandLine)
	startResult, err := s.runner.Start(commandLine)
	if err != nil {
		logger.Printf("Failed to start process: %s: %v", commandLine, err)
		return nil, status.Errorf(codes.Aborted, "Error starting process: %s", err)
	}
	logger.Printf("Started process %s: %s", startResult.ID, commandLine)

	spiffeId := extractSpiffeIdFromContext(ctx)

	if spiffeId != nil {
		s.mu.Lock()
		s.ownersMap[startResult.ID] = *spiffeId
		s.mu.Unlock()
	}

	return toProcessStruct(startResult.ID, startResult.Process, startResult.Status), nil
}
