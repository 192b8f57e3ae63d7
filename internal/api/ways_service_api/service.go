package ways_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName        = "airlines.v1.WaysService"
	FindWaysFullMethod = "/" + ServiceName + "/FindWays"
)

// WaysServiceServer is the server side of airlines.v1.WaysService. Messages are
// google.protobuf.Struct so the service needs no generated code.
type WaysServiceServer interface {
	FindWays(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var WaysServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WaysServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FindWays",
			Handler:    findWaysHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "airlines/v1/ways.proto",
}

func RegisterWaysServiceServer(s grpc.ServiceRegistrar, srv WaysServiceServer) {
	s.RegisterService(&WaysServiceDesc, srv)
}

func findWaysHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WaysServiceServer).FindWays(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FindWaysFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WaysServiceServer).FindWays(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type WaysServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWaysServiceClient(cc grpc.ClientConnInterface) *WaysServiceClient {
	return &WaysServiceClient{cc: cc}
}

func (c *WaysServiceClient) FindWays(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FindWaysFullMethod, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
