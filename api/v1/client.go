package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ProcessRunnerServiceClient is the client API for ProcessRunnerService.
type ProcessRunnerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewProcessRunnerServiceClient(cc grpc.ClientConnInterface) *ProcessRunnerServiceClient {
	return &ProcessRunnerServiceClient{cc: cc}
}

func (c *ProcessRunnerServiceClient) Start(ctx context.Context, commandLine string, opts ...grpc.CallOption) (*ProcessInfo, error) {
	return c.call(ctx, ProcessRunnerService_Start_FullMethodName, commandLine, opts)
}

func (c *ProcessRunnerServiceClient) Status(ctx context.Context, processIdentifier string, opts ...grpc.CallOption) (*ProcessInfo, error) {
	return c.call(ctx, ProcessRunnerService_Status_FullMethodName, processIdentifier, opts)
}

func (c *ProcessRunnerServiceClient) Stop(ctx context.Context, processIdentifier string, opts ...grpc.CallOption) (*ProcessInfo, error) {
	return c.call(ctx, ProcessRunnerService_Stop_FullMethodName, processIdentifier, opts)
}

func (c *ProcessRunnerServiceClient) call(ctx context.Context, method, arg string, opts []grpc.CallOption) (*ProcessInfo, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, wrapperspb.String(arg), out, opts...); err != nil {
		return nil, err
	}
	return ProcessInfoFromStruct(out)
}
