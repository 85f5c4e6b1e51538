package main

import (
	"context"
	"errors"
	"os"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *ProcessRunnerServiceServer) Status(ctx context.Context, request *wrapperspb.StringValue) (*structpb.Struct, error) {
	processIdentifier := request.GetValue()

	err := s.checkOwnership(ctx, processIdentifier)

	if err != nil {
		return nil, err
	}

	statusResult, err := s.runner.Status(processIdentifier)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, status.Errorf(codes.NotFound, "process not found: %s", processIdentifier)
		}
		return nil, status.Errorf(codes.Internal, "error getting status: %v", err)
	}
	return toProcessStruct(processIdentifier, statusResult.Process, statusResult.Status), nil
}
