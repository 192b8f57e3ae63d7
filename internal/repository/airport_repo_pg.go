package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context, name, city string) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context, name, city string) ([]domain.Airport, error) {
	query, args := airportListQuery(name, city)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.City); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT id, name, closest_big_city FROM airports WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.City)
	if err != nil {
		return nil, mapError(err, "airport", id)
	}
	return &a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	err := r.db.QueryRow(ctx, `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.City).Scan(&airport.ID)
	return mapError(err, "airport", airport.Name)
}

func airportListQuery(name, city string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if name != "" {
		args = append(args, "%"+name+"%")
		conds = append(conds, "name ILIKE $"+strconv.Itoa(len(args)))
	}
	if city != "" {
		args = append(args, "%"+city+"%")
		conds = append(conds, "closest_big_city ILIKE $"+strconv.Itoa(len(args)))
	}

	query := `SELECT id, name, closest_big_city FROM airports`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return query + " ORDER BY id", args
}

var _ AirportRepository = (*PGAirportRepository)(nil)
