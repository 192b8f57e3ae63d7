package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context, sourceID, destinationID int64) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	// FindByDestination returns every route ending at airportID, shortest first.
	FindByDestination(ctx context.Context, airportID int64) ([]domain.Route, error)
	FindByEndpoints(ctx context.Context, sourceID, destinationID int64) (*domain.Route, error)
	Create(ctx context.Context, route *domain.Route) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeColumns = `r.id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city
	FROM routes r
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id`

func (r *PGRouteRepository) List(ctx context.Context, sourceID, destinationID int64) ([]domain.Route, error) {
	var (
		conds []string
		args  []any
	)
	if sourceID != 0 {
		args = append(args, sourceID)
		conds = append(conds, "r.source_id = $"+strconv.Itoa(len(args)))
	}
	if destinationID != 0 {
		args = append(args, destinationID)
		conds = append(conds, "r.destination_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + routeColumns
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return r.query(ctx, query+" ORDER BY r.id", args...)
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, `SELECT `+routeColumns+` WHERE r.id=$1`, id)
	route, err := scanRoute(row)
	if err != nil {
		return nil, mapError(err, "route", id)
	}
	return route, nil
}

func (r *PGRouteRepository) FindByDestination(ctx context.Context, airportID int64) ([]domain.Route, error) {
	return r.query(ctx, `SELECT `+routeColumns+` WHERE r.destination_id=$1 ORDER BY r.distance, r.id`, airportID)
}

func (r *PGRouteRepository) FindByEndpoints(ctx context.Context, sourceID, destinationID int64) (*domain.Route, error) {
	row := r.db.QueryRow(ctx, `SELECT `+routeColumns+` WHERE r.source_id=$1 AND r.destination_id=$2`, sourceID, destinationID)
	route, err := scanRoute(row)
	if err != nil {
		return nil, mapError(err, "route", fmt.Sprintf("%d->%d", sourceID, destinationID))
	}
	return route, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := r.db.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
		route.Source.ID, route.Destination.ID, route.Distance).Scan(&route.ID)
	return mapError(err, "route", fmt.Sprintf("%d->%d", route.Source.ID, route.Destination.ID))
}

func (r *PGRouteRepository) query(ctx context.Context, query string, args ...any) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		routes = append(routes, *route)
	}
	return routes, rows.Err()
}

func scanRoute(row pgx.Row) (*domain.Route, error) {
	var rt domain.Route
	if err := row.Scan(&rt.ID, &rt.Distance,
		&rt.Source.ID, &rt.Source.Name, &rt.Source.City,
		&rt.Destination.ID, &rt.Destination.Name, &rt.Destination.City); err != nil {
		return nil, err
	}
	return &rt, nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
