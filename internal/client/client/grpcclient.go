package client

import (
	"context"
	"fmt"
	"time"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/catalogpb"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/common"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const defaultRequestTimeout = 10 * time.Second

type GRPCClient struct {
	endpointURL    string
	conn           *grpc.ClientConn
	client         catalogpb.CatalogClient
	requestTimeout time.Duration
}

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	if len(md.Get(common.RequestIDHeaderName)) == 0 {
		md.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

// NewCatalogClient dials endpointURL lazily; the first call establishes the connection.
// A non-positive requestTimeout selects the default.
func NewCatalogClient(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.requestIDInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = catalogpb.NewCatalogClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) call(ctx context.Context, fn func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error), in *structpb.Struct) (*structpb.Struct, error) {
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	resp, err := fn(ctx, in)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.call(ctx, s.client.Ping, &structpb.Struct{})
	if err != nil {
		return err
	}
	if catalogpb.DecodeStatus(resp) != common.StatusOK {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Characters(ctx context.Context, after string, first int) (models.Page[models.Character], error) {
	resp, err := s.call(ctx, s.client.AllCharacters, catalogpb.EncodePageRequest(catalogpb.PageRequest{After: after, First: first}))
	if err != nil {
		return models.EmptyPage[models.Character](), err
	}
	return catalogpb.DecodePage(resp, catalogpb.DecodeCharacter), nil
}

func (s *GRPCClient) Starships(ctx context.Context, after string, first int) (models.Page[models.Starship], error) {
	resp, err := s.call(ctx, s.client.AllStarships, catalogpb.EncodePageRequest(catalogpb.PageRequest{After: after, First: first}))
	if err != nil {
		return models.EmptyPage[models.Starship](), err
	}
	return catalogpb.DecodePage(resp, catalogpb.DecodeStarship), nil
}

func (s *GRPCClient) Planets(ctx context.Context, after string, first int) (models.Page[models.Planet], error) {
	resp, err := s.call(ctx, s.client.AllPlanets, catalogpb.EncodePageRequest(catalogpb.PageRequest{After: after, First: first}))
	if err != nil {
		return models.EmptyPage[models.Planet](), err
	}
	return catalogpb.DecodePage(resp, catalogpb.DecodePlanet), nil
}

func (s *GRPCClient) Character(ctx context.Context, id string) (*models.Character, error) {
	resp, err := s.call(ctx, s.client.Character, catalogpb.EncodeID(id))
	if err != nil {
		return nil, err
	}
	c := catalogpb.DecodeCharacter(resp)
	return &c, nil
}

func (s *GRPCClient) Starship(ctx context.Context, id string) (*models.Starship, error) {
	resp, err := s.call(ctx, s.client.Starship, catalogpb.EncodeID(id))
	if err != nil {
		return nil, err
	}
	v := catalogpb.DecodeStarship(resp)
	return &v, nil
}

func (s *GRPCClient) Planet(ctx context.Context, id string) (*models.Planet, error) {
	resp, err := s.call(ctx, s.client.Planet, catalogpb.EncodeID(id))
	if err != nil {
		return nil, err
	}
	p := catalogpb.DecodePlanet(resp)
	return &p, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
