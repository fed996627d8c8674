package grpc

import (
	"context"
	"errors"

	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/catalogpb"
	"github.com/OmelchenkoMaksim/StarWars-Compose-Apollo-GraphQL-MVI-Room-sub000/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ catalogpb.CatalogServer = (*GRPCServer)(nil)

func (s *GRPCServer) AllCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := catalogpb.DecodePageRequest(req)
	page, err := s.catalog.Characters(ctx, r.After, r.First)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return catalogpb.EncodePage(page, catalogpb.EncodeCharacter), nil
}

func (s *GRPCServer) AllStarships(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := catalogpb.DecodePageRequest(req)
	page, err := s.catalog.Starships(ctx, r.After, r.First)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return catalogpb.EncodePage(page, catalogpb.EncodeStarship), nil
}

func (s *GRPCServer) AllPlanets(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	r := catalogpb.DecodePageRequest(req)
	page, err := s.catalog.Planets(ctx, r.After, r.First)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return catalogpb.EncodePage(page, catalogpb.EncodePlanet), nil
}

func (s *GRPCServer) Character(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	c, err := s.catalog.Character(ctx, catalogpb.DecodeID(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return catalogpb.EncodeCharacter(*c), nil
}

func (s *GRPCServer) Starship(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	v, err := s.catalog.Starship(ctx, catalogpb.DecodeID(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return catalogpb.EncodeStarship(*v), nil
}

func (s *GRPCServer) Planet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.catalog.Planet(ctx, catalogpb.DecodeID(req))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return catalogpb.EncodePlanet(*p), nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	return catalogpb.EncodeStatus(common.StatusOK), nil

}

// toStatus maps domain errors onto gRPC codes. Unexpected errors are logged
// and reported without their details.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrInvalidCursor), errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}
