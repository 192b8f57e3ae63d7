package repository

import (
	"context"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository interface {
	// Create stores the order with its passengers and tickets in one transaction.
	Create(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Get(ctx context.Context, userID, id int64) (*domain.Order, error)
	// Cancel marks the order cancelled and frees its seats.
	Cancel(ctx context.Context, userID, id int64) (*domain.Order, error)
}

type PGOrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PGOrderRepository{db: db}
}

func (r *PGOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO orders (user_id) VALUES ($1) RETURNING id, created_at, is_cancelled`, order.UserID).
		Scan(&order.ID, &order.CreatedAt, &order.Cancelled); err != nil {
		return err
	}

	for i := range order.Tickets {
		t := &order.Tickets[i]
		var passengerID int64
		if err := tx.QueryRow(ctx, `INSERT INTO passengers (first_name, last_name, flight_id) VALUES ($1, $2, $3) RETURNING id`,
			t.Passenger.FirstName, t.Passenger.LastName, t.FlightID).Scan(&passengerID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `INSERT INTO tickets (seat_row, seat, flight_id, order_id, passenger_id) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			t.Row, t.Seat, t.FlightID, order.ID, passengerID).Scan(&t.ID); err != nil {
			return mapError(err, "ticket", t.FlightID)
		}
	}

	return tx.Commit(ctx)
}

func (r *PGOrderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, is_cancelled, created_at FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Cancelled, &o.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		tickets, err := r.tickets(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Tickets = tickets
	}
	return orders, nil
}

func (r *PGOrderRepository) Get(ctx context.Context, userID, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.QueryRow(ctx, `SELECT id, user_id, is_cancelled, created_at FROM orders WHERE id=$1 AND user_id=$2`, id, userID).
		Scan(&o.ID, &o.UserID, &o.Cancelled, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err, "order", id)
	}
	if o.Tickets, err = r.tickets(ctx, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGOrderRepository) Cancel(ctx context.Context, userID, id int64) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var o domain.Order
	err = tx.QueryRow(ctx, `UPDATE orders SET is_cancelled = true WHERE id=$1 AND user_id=$2 RETURNING id, user_id, is_cancelled, created_at`, id, userID).
		Scan(&o.ID, &o.UserID, &o.Cancelled, &o.CreatedAt)
	if err != nil {
		return nil, mapError(err, "order", id)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tickets WHERE order_id=$1`, id); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	o.Tickets = []domain.Ticket{}
	return &o, nil
}

func (r *PGOrderRepository) tickets(ctx context.Context, orderID int64) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT t.id, t.flight_id, t.seat_row, t.seat, p.first_name, p.last_name
		FROM tickets t JOIN passengers p ON p.id = t.passenger_id
		WHERE t.order_id=$1 ORDER BY t.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.FlightID, &t.Row, &t.Seat, &t.Passenger.FirstName, &t.Passenger.LastName); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ OrderRepository = (*PGOrderRepository)(nil)
