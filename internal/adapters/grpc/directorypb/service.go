// Package directorypb は directory.v1.EmployeeService のサービス定義です。
// メッセージはすべて google.protobuf.Struct で表現します。
package directorypb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "directory.v1.EmployeeService"

const (
	EmployeeService_ListEmployees_FullMethodName   = "/directory.v1.EmployeeService/ListEmployees"
	EmployeeService_GetEmployee_FullMethodName     = "/directory.v1.EmployeeService/GetEmployee"
	EmployeeService_CreateEmployee_FullMethodName  = "/directory.v1.EmployeeService/CreateEmployee"
	EmployeeService_UpdateEmployee_FullMethodName  = "/directory.v1.EmployeeService/UpdateEmployee"
	EmployeeService_Summarize_FullMethodName       = "/directory.v1.EmployeeService/Summarize"
	EmployeeService_ListDepartments_FullMethodName = "/directory.v1.EmployeeService/ListDepartments"
)

// EmployeeServiceServer はサーバー側の実装が満たすべきインターフェースです。
type EmployeeServiceServer interface {
	ListEmployees(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateEmployee(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Summarize(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListDepartments(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterEmployeeServiceServer はサービスを gRPC サーバーに登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeService_ServiceDesc, srv)
}

type unaryCall func(EmployeeServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EmployeeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EmployeeServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EmployeeService_ServiceDesc は EmployeeService の grpc.ServiceDesc です。
var EmployeeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListEmployees",
			Handler:    unaryHandler(EmployeeService_ListEmployees_FullMethodName, EmployeeServiceServer.ListEmployees),
		},
		{
			MethodName: "GetEmployee",
			Handler:    unaryHandler(EmployeeService_GetEmployee_FullMethodName, EmployeeServiceServer.GetEmployee),
		},
		{
			MethodName: "CreateEmployee",
			Handler:    unaryHandler(EmployeeService_CreateEmployee_FullMethodName, EmployeeServiceServer.CreateEmployee),
		},
		{
			MethodName: "UpdateEmployee",
			Handler:    unaryHandler(EmployeeService_UpdateEmployee_FullMethodName, EmployeeServiceServer.UpdateEmployee),
		},
		{
			MethodName: "Summarize",
			Handler:    unaryHandler(EmployeeService_Summarize_FullMethodName, EmployeeServiceServer.Summarize),
		},
		{
			MethodName: "ListDepartments",
			Handler:    unaryHandler(EmployeeService_ListDepartments_FullMethodName, EmployeeServiceServer.ListDepartments),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "directory/v1/employee.proto",
}

// EmployeeServiceClient は EmployeeService のクライアントです。
type EmployeeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeServiceClient は EmployeeServiceClient を生成します。
func NewEmployeeServiceClient(cc grpc.ClientConnInterface) *EmployeeServiceClient {
	return &EmployeeServiceClient{cc: cc}
}

func (c *EmployeeServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) ListEmployees(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EmployeeService_ListEmployees_FullMethodName, in, opts...)
}

func (c *EmployeeServiceClient) GetEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EmployeeService_GetEmployee_FullMethodName, in, opts...)
}

func (c *EmployeeServiceClient) CreateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EmployeeService_CreateEmployee_FullMethodName, in, opts...)
}

func (c *EmployeeServiceClient) UpdateEmployee(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EmployeeService_UpdateEmployee_FullMethodName, in, opts...)
}

func (c *EmployeeServiceClient) Summarize(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EmployeeService_Summarize_FullMethodName, in, opts...)
}

func (c *EmployeeServiceClient) ListDepartments(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EmployeeService_ListDepartments_FullMethodName, in, opts...)
}
