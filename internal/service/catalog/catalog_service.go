package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/repository"
)

type CatalogUseCase interface {
	ListAirports(ctx context.Context, name, city string) ([]domain.Airport, error)
	GetAirport(ctx context.Context, id int64) (*domain.Airport, error)
	CreateAirport(ctx context.Context, input CreateAirportInput) (*domain.Airport, error)
	ListRoutes(ctx context.Context, sourceID, destinationID int64) ([]domain.Route, error)
	GetRoute(ctx context.Context, id int64) (*domain.Route, error)
	CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
}

type CreateAirportInput struct {
	Name string `json:"name"`
	City string `json:"closest_big_city"`
}

type CreateRouteInput struct {
	SourceID      int64 `json:"source"`
	DestinationID int64 `json:"destination"`
	Distance      int   `json:"distance"`
}

type CatalogService struct {
	airports repository.AirportRepository
	routes   repository.RouteRepository
}

func NewCatalogService(airports repository.AirportRepository, routes repository.RouteRepository) *CatalogService {
	return &CatalogService{airports: airports, routes: routes}
}

func (s *CatalogService) ListAirports(ctx context.Context, name, city string) ([]domain.Airport, error) {
	return s.airports.List(ctx, strings.TrimSpace(name), strings.TrimSpace(city))
}

func (s *CatalogService) GetAirport(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.airports.GetByID(ctx, id)
}

func (s *CatalogService) CreateAirport(ctx context.Context, input CreateAirportInput) (*domain.Airport, error) {
	name, city := strings.TrimSpace(input.Name), strings.TrimSpace(input.City)
	if name == "" || city == "" {
		return nil, fmt.Errorf("%w: name and closest_big_city are required", domain.ErrInvalidRequest)
	}

	airport := &domain.Airport{Name: name, City: city}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *CatalogService) ListRoutes(ctx context.Context, sourceID, destinationID int64) ([]domain.Route, error) {
	return s.routes.List(ctx, sourceID, destinationID)
}

func (s *CatalogService) GetRoute(ctx context.Context, id int64) (*domain.Route, error) {
	return s.routes.GetByID(ctx, id)
}

func (s *CatalogService) CreateRoute(ctx context.Context, input CreateRouteInput) (*domain.Route, error) {
	if input.SourceID == 0 || input.DestinationID == 0 {
		return nil, fmt.Errorf("%w: source and destination are required", domain.ErrInvalidRequest)
	}
	if input.SourceID == input.DestinationID {
		return nil, fmt.Errorf("%w: source and destination must differ", domain.ErrInvalidRequest)
	}
	if input.Distance <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", domain.ErrInvalidRequest)
	}

	source, err := s.airports.GetByID(ctx, input.SourceID)
	if err != nil {
		return nil, err
	}
	destination, err := s.airports.GetByID(ctx, input.DestinationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.routes.FindByEndpoints(ctx, source.ID, destination.ID); err == nil {
		return nil, fmt.Errorf("%w: route %d->%d", domain.ErrConflict, source.ID, destination.ID)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	route := &domain.Route{Source: *source, Destination: *destination, Distance: input.Distance}
	if err := s.routes.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
