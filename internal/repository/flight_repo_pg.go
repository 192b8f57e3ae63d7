package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	// Find returns flights matching filter ordered by departure time, then id.
	Find(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// CompleteDeparted flags every open flight that departed before now and returns their ids.
	CompleteDeparted(ctx context.Context, now time.Time) ([]int64, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `f.id, f.departure_time, f.arrival_time, f.is_completed,
	r.id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city,
	a.id, a.name, a.rows, a.seats_in_row, t.name,
	(SELECT count(*) FROM tickets tk WHERE tk.flight_id = f.id)
	FROM flights f
	JOIN routes r ON r.id = f.route_id
	JOIN airports s ON s.id = r.source_id
	JOIN airports d ON d.id = r.destination_id
	JOIN airplanes a ON a.id = f.airplane_id
	JOIN airplane_types t ON t.id = a.airplane_type_id`

func (r *PGFlightRepository) Find(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	query, args := flightFindQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` WHERE f.id=$1`, id))
	if err != nil {
		return nil, mapError(err, "flight", id)
	}
	return f, nil
}

func (r *PGFlightRepository) CompleteDeparted(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `UPDATE flights SET is_completed = true WHERE is_completed = false AND departure_time < $1 RETURNING id`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func flightFindQuery(filter domain.FlightFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, cond+"$"+strconv.Itoa(len(args)))
	}

	if filter.RouteID != 0 {
		add("f.route_id = ", filter.RouteID)
	}
	if !filter.DepartureAfter.IsZero() {
		add("f.departure_time > ", filter.DepartureAfter)
	}
	if !filter.DepartureBefore.IsZero() {
		add("f.departure_time < ", filter.DepartureBefore)
	}
	if filter.DepartureDate != "" {
		add("f.departure_time::date = ", filter.DepartureDate)
	}

	query := `SELECT ` + flightColumns
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY f.departure_time, f.id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	return query, args
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.DepartureTime, &f.ArrivalTime, &f.Completed,
		&f.Route.ID, &f.Route.Distance,
		&f.Route.Source.ID, &f.Route.Source.Name, &f.Route.Source.City,
		&f.Route.Destination.ID, &f.Route.Destination.Name, &f.Route.Destination.City,
		&f.Airplane.ID, &f.Airplane.Name, &f.Airplane.Rows, &f.Airplane.SeatsInRow, &f.Airplane.Type,
		&f.TicketsTaken); err != nil {
		return nil, err
	}
	return &f, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
