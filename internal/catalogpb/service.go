package catalogpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "starwars.catalog.v1.CatalogService"

const (
	MethodAllCharacters = "/" + ServiceName + "/AllCharacters"
	MethodAllStarships  = "/" + ServiceName + "/AllStarships"
	MethodAllPlanets    = "/" + ServiceName + "/AllPlanets"
	MethodCharacter     = "/" + ServiceName + "/Character"
	MethodStarship      = "/" + ServiceName + "/Starship"
	MethodPlanet        = "/" + ServiceName + "/Planet"
	MethodPing          = "/" + ServiceName + "/Ping"
)

// CatalogClient is the client API for the catalog service.
type CatalogClient interface {
	AllCharacters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AllStarships(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AllPlanets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Character(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Starship(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Planet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type catalogClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogClient(cc grpc.ClientConnInterface) CatalogClient {
	return &catalogClient{cc: cc}
}

func (c *catalogClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogClient) AllCharacters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAllCharacters, in, opts)
}

func (c *catalogClient) AllStarships(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAllStarships, in, opts)
}

func (c *catalogClient) AllPlanets(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodAllPlanets, in, opts)
}

func (c *catalogClient) Character(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCharacter, in, opts)
}

func (c *catalogClient) Starship(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodStarship, in, opts)
}

func (c *catalogClient) Planet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPlanet, in, opts)
}

func (c *catalogClient) Ping(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPing, in, opts)
}

// CatalogServer is the server API for the catalog service.
type CatalogServer interface {
	AllCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AllStarships(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AllPlanets(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Character(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Starship(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Planet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterCatalogServer(s grpc.ServiceRegistrar, srv CatalogServer) {
	s.RegisterService(&ServiceDesc, srv)
}

type serverCall func(srv CatalogServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call serverCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc is the grpc.ServiceDesc for the catalog service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AllCharacters", Handler: unaryHandler(MethodAllCharacters, CatalogServer.AllCharacters)},
		{MethodName: "AllStarships", Handler: unaryHandler(MethodAllStarships, CatalogServer.AllStarships)},
		{MethodName: "AllPlanets", Handler: unaryHandler(MethodAllPlanets, CatalogServer.AllPlanets)},
		{MethodName: "Character", Handler: unaryHandler(MethodCharacter, CatalogServer.Character)},
		{MethodName: "Starship", Handler: unaryHandler(MethodStarship, CatalogServer.Starship)},
		{MethodName: "Planet", Handler: unaryHandler(MethodPlanet, CatalogServer.Planet)},
		{MethodName: "Ping", Handler: unaryHandler(MethodPing, CatalogServer.Ping)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "starwars/catalog/v1/catalog.proto",
}
