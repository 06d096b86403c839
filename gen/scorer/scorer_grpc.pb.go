// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: scorer.proto

package scorer

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ScorerService_ScoreSegments_FullMethodName = "/scorer.ScorerService/ScoreSegments"
)

// ScorerServiceClient is the client API for ScorerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ScorerService is the external neural scoring collaborator. It refines
// perception-derived segment features into learned risk estimates.
//
// Regenerate bindings with:
//
//	protoc --go_out=. --go-grpc_out=. proto/scorer.proto
type ScorerServiceClient interface {
	ScoreSegments(ctx context.Context, in *ScoreSegmentsRequest, opts ...grpc.CallOption) (*ScoreSegmentsResponse, error)
}

type scorerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScorerServiceClient(cc grpc.ClientConnInterface) ScorerServiceClient {
	return &scorerServiceClient{cc}
}

func (c *scorerServiceClient) ScoreSegments(ctx context.Context, in *ScoreSegmentsRequest, opts ...grpc.CallOption) (*ScoreSegmentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScoreSegmentsResponse)
	err := c.cc.Invoke(ctx, ScorerService_ScoreSegments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScorerServiceServer is the server API for ScorerService service.
// All implementations must embed UnimplementedScorerServiceServer
// for forward compatibility.
//
// ScorerService is the external neural scoring collaborator. It refines
// perception-derived segment features into learned risk estimates.
//
// Regenerate bindings with:
//
//	protoc --go_out=. --go-grpc_out=. proto/scorer.proto
type ScorerServiceServer interface {
	ScoreSegments(context.Context, *ScoreSegmentsRequest) (*ScoreSegmentsResponse, error)
	mustEmbedUnimplementedScorerServiceServer()
}

// UnimplementedScorerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScorerServiceServer struct{}

func (UnimplementedScorerServiceServer) ScoreSegments(context.Context, *ScoreSegmentsRequest) (*ScoreSegmentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreSegments not implemented")
}
func (UnimplementedScorerServiceServer) mustEmbedUnimplementedScorerServiceServer() {}
func (UnimplementedScorerServiceServer) testEmbeddedByValue()                       {}

// UnsafeScorerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScorerServiceServer will
// result in compilation errors.
type UnsafeScorerServiceServer interface {
	mustEmbedUnimplementedScorerServiceServer()
}

func RegisterScorerServiceServer(s grpc.ServiceRegistrar, srv ScorerServiceServer) {
	// If the following call pancis, it indicates UnimplementedScorerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScorerService_ServiceDesc, srv)
}

func _ScorerService_ScoreSegments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreSegmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScorerServiceServer).ScoreSegments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScorerService_ScoreSegments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScorerServiceServer).ScoreSegments(ctx, req.(*ScoreSegmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScorerService_ServiceDesc is the grpc.ServiceDesc for ScorerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScorerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "scorer.ScorerService",
	HandlerType: (*ScorerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScoreSegments",
			Handler:    _ScorerService_ScoreSegments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "scorer.proto",
}
