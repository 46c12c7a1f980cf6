// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: insights/v1/insights.proto

package insightsv1

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
	InsightsService_AnalyzeSurvey_FullMethodName = "/insights.v1.InsightsService/AnalyzeSurvey"
)

// InsightsServiceClient is the client API for InsightsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// InsightsService runs survey analysis on demand.
type InsightsServiceClient interface {
	AnalyzeSurvey(ctx context.Context, in *AnalyzeSurveyRequest, opts ...grpc.CallOption) (*AnalyzeSurveyResponse, error)
}

type insightsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInsightsServiceClient(cc grpc.ClientConnInterface) InsightsServiceClient {
	return &insightsServiceClient{cc}
}

func (c *insightsServiceClient) AnalyzeSurvey(ctx context.Context, in *AnalyzeSurveyRequest, opts ...grpc.CallOption) (*AnalyzeSurveyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AnalyzeSurveyResponse)
	err := c.cc.Invoke(ctx, InsightsService_AnalyzeSurvey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsightsServiceServer is the server API for InsightsService service.
// All implementations must embed UnimplementedInsightsServiceServer
// for forward compatibility.
//
// InsightsService runs survey analysis on demand.
type InsightsServiceServer interface {
	AnalyzeSurvey(context.Context, *AnalyzeSurveyRequest) (*AnalyzeSurveyResponse, error)
	mustEmbedUnimplementedInsightsServiceServer()
}

// UnimplementedInsightsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInsightsServiceServer struct{}

func (UnimplementedInsightsServiceServer) AnalyzeSurvey(context.Context, *AnalyzeSurveyRequest) (*AnalyzeSurveyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AnalyzeSurvey not implemented")
}
func (UnimplementedInsightsServiceServer) mustEmbedUnimplementedInsightsServiceServer() {}
func (UnimplementedInsightsServiceServer) testEmbeddedByValue()                         {}

// UnsafeInsightsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InsightsServiceServer will
// result in compilation errors.
type UnsafeInsightsServiceServer interface {
	mustEmbedUnimplementedInsightsServiceServer()
}

func RegisterInsightsServiceServer(s grpc.ServiceRegistrar, srv InsightsServiceServer) {
	// If the following call panics, it indicates UnimplementedInsightsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InsightsService_ServiceDesc, srv)
}

func _InsightsService_AnalyzeSurvey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeSurveyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InsightsServiceServer).AnalyzeSurvey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InsightsService_AnalyzeSurvey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InsightsServiceServer).AnalyzeSurvey(ctx, req.(*AnalyzeSurveyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InsightsService_ServiceDesc is the grpc.ServiceDesc for InsightsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InsightsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "insights.v1.InsightsService",
	HandlerType: (*InsightsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AnalyzeSurvey",
			Handler:    _InsightsService_AnalyzeSurvey_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "insights/v1/insights.proto",
}

const (
	ExportService_SubmitExport_FullMethodName   = "/insights.v1.ExportService/SubmitExport"
	ExportService_ListExportJobs_FullMethodName = "/insights.v1.ExportService/ListExportJobs"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService submits composite export jobs and lists what was submitted.
type ExportServiceClient interface {
	SubmitExport(ctx context.Context, in *SubmitExportRequest, opts ...grpc.CallOption) (*SubmitExportResponse, error)
	ListExportJobs(ctx context.Context, in *ListExportJobsRequest, opts ...grpc.CallOption) (*ListExportJobsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) SubmitExport(ctx context.Context, in *SubmitExportRequest, opts ...grpc.CallOption) (*SubmitExportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitExportResponse)
	err := c.cc.Invoke(ctx, ExportService_SubmitExport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ListExportJobs(ctx context.Context, in *ListExportJobsRequest, opts ...grpc.CallOption) (*ListExportJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExportJobsResponse)
	err := c.cc.Invoke(ctx, ExportService_ListExportJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService submits composite export jobs and lists what was submitted.
type ExportServiceServer interface {
	SubmitExport(context.Context, *SubmitExportRequest) (*SubmitExportResponse, error)
	ListExportJobs(context.Context, *ListExportJobsRequest) (*ListExportJobsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) SubmitExport(context.Context, *SubmitExportRequest) (*SubmitExportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitExport not implemented")
}
func (UnimplementedExportServiceServer) ListExportJobs(context.Context, *ListExportJobsRequest) (*ListExportJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListExportJobs not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_SubmitExport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitExportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).SubmitExport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_SubmitExport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).SubmitExport(ctx, req.(*SubmitExportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ListExportJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExportJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ListExportJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ListExportJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ListExportJobs(ctx, req.(*ListExportJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "insights.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitExport",
			Handler:    _ExportService_SubmitExport_Handler,
		},
		{
			MethodName: "ListExportJobs",
			Handler:    _ExportService_ListExportJobs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "insights/v1/insights.proto",
}
