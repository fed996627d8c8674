package grpc

import (
	"context"
	"net"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/catalogpb"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/logging"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/models"
	"google.golang.org/grpc"
)

// CatalogService is the use-case layer the handlers delegate to.
type CatalogService interface {
	Characters(ctx context.Context, after string, first int) (models.Page[models.Character], error)
	Starships(ctx context.Context, after string, first int) (models.Page[models.Starship], error)
	Planets(ctx context.Context, after string, first int) (models.Page[models.Planet], error)
	Character(ctx context.Context, id string) (*models.Character, error)
	Starship(ctx context.Context, id string) (*models.Starship, error)
	Planet(ctx context.Context, id string) (*models.Planet, error)
}

type GRPCServer struct {
	address string
	catalog CatalogService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, cs CatalogService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		catalog: cs,
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	catalogpb.RegisterCatalogServer(srv, s)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
