// Package apiv1 defines the processrunner.v1 gRPC service.
//
// Messages are protobuf well-known types: requests are a StringValue holding
// a command line or a process identifier, responses are a Struct (see
// ProcessInfo for the field names).
package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "processrunner.v1.ProcessRunnerService"

const (
	ProcessRunnerService_Start_FullMethodName  = "/" + ServiceName + "/Start"
	ProcessRunnerService_Status_FullMethodName = "/" + ServiceName + "/Status"
	ProcessRunnerService_Stop_FullMethodName   = "/" + ServiceName + "/Stop"
)

// ProcessRunnerServiceServer is the server API for ProcessRunnerService.
type ProcessRunnerServiceServer interface {
	// Start takes a command line and returns the new process.
	Start(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	// Status takes a process identifier.
	Status(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	// Stop takes a process identifier, kills the process and returns its final state.
	Stop(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

func RegisterProcessRunnerServiceServer(s grpc.ServiceRegistrar, srv ProcessRunnerServiceServer) {
	s.RegisterService(&ProcessRunnerService_ServiceDesc, srv)
}

func unaryHandler(fullMethod string, call func(ProcessRunnerServiceServer, context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(wrapperspb.StringValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ProcessRunnerServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ProcessRunnerServiceServer), ctx, req.(*wrapperspb.StringValue))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ProcessRunnerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProcessRunnerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Start",
			Handler:    unaryHandler(ProcessRunnerService_Start_FullMethodName, ProcessRunnerServiceServer.Start),
		},
		{
			MethodName: "Status",
			Handler:    unaryHandler(ProcessRunnerService_Status_FullMethodName, ProcessRunnerServiceServer.Status),
		},
		{
			MethodName: "Stop",
			Handler:    unaryHandler(ProcessRunnerService_Stop_FullMethodName, ProcessRunnerServiceServer.Stop),
		},
	},
	Streams: []grpc.StreamDesc{},
}
