// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: internal/adapter/grpc/propcast/v1/propcast.proto

package propcastv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	PropCastService_RunProjection_FullMethodName         = "/propcast.v1.PropCastService/RunProjection"
	PropCastService_CompareRepaymentModes_FullMethodName = "/propcast.v1.PropCastService/CompareRepaymentModes"
	PropCastService_ListPresets_FullMethodName           = "/propcast.v1.PropCastService/ListPresets"
)

// PropCastServiceClient is the client API for PropCastService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PropCastService projects the multi-year financial outcome of a leveraged
// property purchase. Money amounts and rates are decimal strings to avoid
// binary floating point on the wire.
type PropCastServiceClient interface {
	// RunProjection turns a set of assumptions into a year-by-year schedule
	// plus headline summary figures.
	RunProjection(ctx context.Context, in *RunProjectionRequest, opts ...grpc.CallOption) (*RunProjectionResponse, error)
	// CompareRepaymentModes projects the same deal interest-only and
	// principal-and-interest and reports the deltas.
	CompareRepaymentModes(ctx context.Context, in *CompareRepaymentModesRequest, opts ...grpc.CallOption) (*CompareRepaymentModesResponse, error)
	// ListPresets returns the canonical starting scenarios and input choices.
	ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error)
}

type propCastServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPropCastServiceClient(cc grpc.ClientConnInterface) PropCastServiceClient {
	return &propCastServiceClient{cc}
}

func (c *propCastServiceClient) RunProjection(ctx context.Context, in *RunProjectionRequest, opts ...grpc.CallOption) (*RunProjectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunProjectionResponse)
	err := c.cc.Invoke(ctx, PropCastService_RunProjection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propCastServiceClient) CompareRepaymentModes(ctx context.Context, in *CompareRepaymentModesRequest, opts ...grpc.CallOption) (*CompareRepaymentModesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompareRepaymentModesResponse)
	err := c.cc.Invoke(ctx, PropCastService_CompareRepaymentModes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *propCastServiceClient) ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPresetsResponse)
	err := c.cc.Invoke(ctx, PropCastService_ListPresets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PropCastServiceServer is the server API for PropCastService service.
// All implementations must embed UnimplementedPropCastServiceServer
// for forward compatibility
//
// PropCastService projects the multi-year financial outcome of a leveraged
// property purchase. Money amounts and rates are decimal strings to avoid
// binary floating point on the wire.
type PropCastServiceServer interface {
	// RunProjection turns a set of assumptions into a year-by-year schedule
	// plus headline summary figures.
	RunProjection(context.Context, *RunProjectionRequest) (*RunProjectionResponse, error)
	// CompareRepaymentModes projects the same deal interest-only and
	// principal-and-interest and reports the deltas.
	CompareRepaymentModes(context.Context, *CompareRepaymentModesRequest) (*CompareRepaymentModesResponse, error)
	// ListPresets returns the canonical starting scenarios and input choices.
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	mustEmbedUnimplementedPropCastServiceServer()
}

// UnimplementedPropCastServiceServer must be embedded to have forward compatible implementations.
type UnimplementedPropCastServiceServer struct {
}

func (UnimplementedPropCastServiceServer) RunProjection(context.Context, *RunProjectionRequest) (*RunProjectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunProjection not implemented")
}
func (UnimplementedPropCastServiceServer) CompareRepaymentModes(context.Context, *CompareRepaymentModesRequest) (*CompareRepaymentModesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareRepaymentModes not implemented")
}
func (UnimplementedPropCastServiceServer) ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPresets not implemented")
}
func (UnimplementedPropCastServiceServer) mustEmbedUnimplementedPropCastServiceServer() {}

// UnsafePropCastServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PropCastServiceServer will
// result in compilation errors.
type UnsafePropCastServiceServer interface {
	mustEmbedUnimplementedPropCastServiceServer()
}

func RegisterPropCastServiceServer(s grpc.ServiceRegistrar, srv PropCastServiceServer) {
	s.RegisterService(&PropCastService_ServiceDesc, srv)
}

func _PropCastService_RunProjection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunProjectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PropCastServiceServer).RunProjection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PropCastService_RunProjection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PropCastServiceServer).RunProjection(ctx, req.(*RunProjectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PropCastService_CompareRepaymentModes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompareRepaymentModesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PropCastServiceServer).CompareRepaymentModes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PropCastService_CompareRepaymentModes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PropCastServiceServer).CompareRepaymentModes(ctx, req.(*CompareRepaymentModesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PropCastService_ListPresets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPresetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PropCastServiceServer).ListPresets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PropCastService_ListPresets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PropCastServiceServer).ListPresets(ctx, req.(*ListPresetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PropCastService_ServiceDesc is the grpc.ServiceDesc for PropCastService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PropCastService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "propcast.v1.PropCastService",
	HandlerType: (*PropCastServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunProjection",
			Handler:    _PropCastService_RunProjection_Handler,
		},
		{
			MethodName: "CompareRepaymentModes",
			Handler:    _PropCastService_CompareRepaymentModes_Handler,
		},
		{
			MethodName: "ListPresets",
			Handler:    _PropCastService_ListPresets_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/adapter/grpc/propcast/v1/propcast.proto",
}
