package ways

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Domenick1991/airlines/internal/domain"
)

// DateLayout is the accepted format of the query date.
const DateLayout = "2006-01-02"

// searchSpan is the width of the departure window starting at the query date.
const searchSpan = 48 * time.Hour

type WaysUseCase interface {
	FindWays(ctx context.Context, q Query) (*domain.SearchResult, error)
}

type AirportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
}

type RouteRepository interface {
	FindByDestination(ctx context.Context, airportID int64) ([]domain.Route, error)
}

type FlightRepository interface {
	Find(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
}

type Query struct {
	Source      int64
	Destination int64
	Date        string
}

// TransferFinder looks up direct flights between two airports and, failing
// that, every feasible one-stop connection inside the search window.
type TransferFinder struct {
	airports AirportRepository
	routes   RouteRepository
	flights  FlightRepository
}

func NewTransferFinder(airports AirportRepository, routes RouteRepository, flights FlightRepository) *TransferFinder {
	return &TransferFinder{airports: airports, routes: routes, flights: flights}
}

func (f *TransferFinder) FindWays(ctx context.Context, q Query) (*domain.SearchResult, error) {
	if q.Source == 0 || q.Destination == 0 || q.Date == "" {
		return nil, fmt.Errorf("%w: airport1, airport2 and date are required", domain.ErrInvalidRequest)
	}
	day, err := time.Parse(DateLayout, q.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q, expected YYYY-MM-DD", domain.ErrInvalidDate, q.Date)
	}

	source, err := f.airports.GetByID(ctx, q.Source)
	if err != nil {
		return nil, err
	}
	destination, err := f.airports.GetByID(ctx, q.Destination)
	if err != nil {
		return nil, err
	}

	available, err := f.flights.Find(ctx, domain.FlightFilter{
		DepartureAfter:  day,
		DepartureBefore: day.Add(searchSpan),
	})
	if err != nil {
		return nil, err
	}
	idx := newFlightIndex(available)

	if direct := idx.on(q.Source, q.Destination); len(direct) > 0 {
		slog.DebugContext(ctx, "direct flights found", "source", q.Source, "destination", q.Destination, "count", len(direct))
		return &domain.SearchResult{Kind: domain.ResultDirect, Direct: direct}, nil
	}

	routes, err := f.routes.FindByDestination(ctx, q.Destination)
	if err != nil {
		return nil, err
	}

	if pairs := connect(q.Source, routes, idx); len(pairs) > 0 {
		slog.DebugContext(ctx, "transfer flights found", "source", q.Source, "destination", q.Destination, "count", len(pairs))
		return &domain.SearchResult{Kind: domain.ResultTransfer, Transfers: pairs}, nil
	}

	return &domain.SearchResult{
		Kind:    domain.ResultEmpty,
		Message: fmt.Sprintf("There are no flights from %s to %s on %s", source.Name, destination.Name, q.Date),
	}, nil
}

type candidate struct {
	second []domain.Flight
	first  []domain.Flight
}

// connect pairs first legs (source -> M) with second legs (M -> destination)
// over the given routes into destination. Routes are visited shortest first.
func connect(source int64, routes []domain.Route, idx flightIndex) []domain.Connection {
	ordered := slices.Clone(routes)
	slices.SortStableFunc(ordered, func(a, b domain.Route) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	candidates := make([]candidate, 0, len(ordered))
	for _, r := range ordered {
		second := idx.byRoute[r.ID]
		if len(second) == 0 {
			continue
		}
		first := idx.on(source, r.Source.ID)
		if len(first) == 0 {
			continue
		}
		candidates = append(candidates, candidate{second: second, first: first})
	}

	var pairs []domain.Connection
	for _, c := range candidates {
		for _, f2 := range c.second {
			for _, f1 := range c.first {
				if f1.ArrivalTime.Before(f2.DepartureTime) {
					pairs = append(pairs, domain.Connection{First: f1, Second: f2})
				}
			}
		}
	}
	return pairs
}

type leg struct {
	from, to int64
}

// flightIndex groups the window's flights by route, keeping repository order.
type flightIndex struct {
	byRoute map[int64][]domain.Flight
	routeOf map[leg]int64
}

func newFlightIndex(flights []domain.Flight) flightIndex {
	idx := flightIndex{
		byRoute: make(map[int64][]domain.Flight),
		routeOf: make(map[leg]int64),
	}
	for _, fl := range flights {
		idx.byRoute[fl.Route.ID] = append(idx.byRoute[fl.Route.ID], fl)
		idx.routeOf[leg{fl.Route.Source.ID, fl.Route.Destination.ID}] = fl.Route.ID
	}
	return idx
}

func (idx flightIndex) on(from, to int64) []domain.Flight {
	id, ok := idx.routeOf[leg{from, to}]
	if !ok {
		return nil
	}
	return idx.byRoute[id]
}

var _ WaysUseCase = (*TransferFinder)(nil)
