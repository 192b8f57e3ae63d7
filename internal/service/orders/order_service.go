package orders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/kafka"
	"github.com/Domenick1991/airlines/internal/repository"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	GetOrder(ctx context.Context, userID, id int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, userID, id int64) (*domain.Order, error)
}

type SeatLocker interface {
	AcquireSeatLock(ctx context.Context, flightID int64, row, seat int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID int64, row, seat int) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// FlightsInvalidator drops cached flight listings whose tickets_available changed.
type FlightsInvalidator interface {
	InvalidateFlights(ctx context.Context) error
}

type TicketInput struct {
	FlightID  int64  `json:"flight"`
	Row       int    `json:"row"`
	Seat      int    `json:"seat"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CreateOrderInput struct {
	UserID  int64
	Tickets []TicketInput
}

type OrderService struct {
	orders             repository.OrderRepository
	flights            repository.FlightRepository
	locker             SeatLocker
	producer           Producer
	ordersTopic        string
	notificationsTopic string
	lockTTL            time.Duration
	invalidator        FlightsInvalidator
}

type OrderServiceOption func(*OrderService)

func WithNotificationsTopic(topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.notificationsTopic = topic
	}
}

func WithFlightsInvalidator(invalidator FlightsInvalidator) OrderServiceOption {
	return func(s *OrderService) {
		s.invalidator = invalidator
	}
}

func NewOrderService(
	orders repository.OrderRepository,
	flights repository.FlightRepository,
	locker SeatLocker,
	producer Producer,
	ordersTopic string,
	lockTTL time.Duration,
	opts ...OrderServiceOption,
) *OrderService {
	s := &OrderService{
		orders:      orders,
		flights:     flights,
		locker:      locker,
		producer:    producer,
		ordersTopic: ordersTopic,
		lockTTL:     lockTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if input.UserID == 0 {
		return nil, fmt.Errorf("%w: user is required", domain.ErrInvalidRequest)
	}
	if len(input.Tickets) == 0 {
		return nil, fmt.Errorf("%w: at least one ticket is required", domain.ErrInvalidRequest)
	}

	tickets, err := s.validateTickets(ctx, input.Tickets)
	if err != nil {
		return nil, err
	}

	release, err := s.lockSeats(ctx, tickets)
	if err != nil {
		return nil, err
	}
	defer release()

	order := &domain.Order{UserID: input.UserID, Tickets: tickets}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateFlights(ctx)
	s.publish(ctx, kafka.EventOrderCreated, order)
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user is required", domain.ErrInvalidRequest)
	}
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) GetOrder(ctx context.Context, userID, id int64) (*domain.Order, error) {
	return s.orders.Get(ctx, userID, id)
}

// CancelOrder is idempotent: cancelling a cancelled order returns it unchanged.
func (s *OrderService) CancelOrder(ctx context.Context, userID, id int64) (*domain.Order, error) {
	current, err := s.orders.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if current.Cancelled {
		return current, nil
	}

	cancelled, err := s.orders.Cancel(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Cancel drops the tickets; the event still reports what was freed.
	s.invalidateFlights(ctx)
	event := *cancelled
	event.Tickets = current.Tickets
	s.publish(ctx, kafka.EventOrderCancelled, &event)
	return cancelled, nil
}

func (s *OrderService) validateTickets(ctx context.Context, inputs []TicketInput) ([]domain.Ticket, error) {
	type seatKey struct {
		flightID  int64
		row, seat int
	}
	seen := make(map[seatKey]bool, len(inputs))
	flights := make(map[int64]*domain.Flight)
	tickets := make([]domain.Ticket, 0, len(inputs))

	for i, in := range inputs {
		first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
		if first == "" || last == "" {
			return nil, fmt.Errorf("%w: ticket %d: passenger name is required", domain.ErrInvalidRequest, i)
		}

		flight, ok := flights[in.FlightID]
		if !ok {
			f, err := s.flights.GetByID(ctx, in.FlightID)
			if err != nil {
				return nil, err
			}
			flight = f
			flights[in.FlightID] = f
		}
		if flight.Completed {
			return nil, fmt.Errorf("%w: flight %d is completed", domain.ErrInvalidRequest, flight.ID)
		}
		if !flight.Airplane.HasSeat(in.Row, in.Seat) {
			return nil, fmt.Errorf("%w: ticket %d: row must be in [1, %d] and seat in [1, %d]",
				domain.ErrInvalidRequest, i, flight.Airplane.Rows, flight.Airplane.SeatsInRow)
		}

		key := seatKey{in.FlightID, in.Row, in.Seat}
		if seen[key] {
			return nil, fmt.Errorf("%w: ticket %d: seat %d/%d is ordered twice", domain.ErrInvalidRequest, i, in.Row, in.Seat)
		}
		seen[key] = true

		tickets = append(tickets, domain.Ticket{
			FlightID:  in.FlightID,
			Row:       in.Row,
			Seat:      in.Seat,
			Passenger: domain.Passenger{FirstName: first, LastName: last},
		})
	}
	return tickets, nil
}

// lockSeats takes a short lock on every seat; on failure the locks already taken are released.
func (s *OrderService) lockSeats(ctx context.Context, tickets []domain.Ticket) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	var locked []domain.Ticket
	release := func() {
		for _, t := range locked {
			if err := s.locker.ReleaseSeatLock(ctx, t.FlightID, t.Row, t.Seat); err != nil {
				slog.WarnContext(ctx, "release seat lock", "flight_id", t.FlightID, "row", t.Row, "seat", t.Seat, "error", err)
			}
		}
	}

	for _, t := range tickets {
		ok, err := s.locker.AcquireSeatLock(ctx, t.FlightID, t.Row, t.Seat, s.lockTTL)
		if err != nil {
			release()
			return nil, err
		}
		if !ok {
			release()
			return nil, fmt.Errorf("%w: flight %d row %d seat %d", domain.ErrSeatLocked, t.FlightID, t.Row, t.Seat)
		}
		locked = append(locked, t)
	}
	return release, nil
}

func (s *OrderService) invalidateFlights(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateFlights(ctx); err != nil {
		slog.WarnContext(ctx, "invalidate flights cache", "error", err)
	}
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.producer == nil || s.ordersTopic == "" {
		return
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.UserID, flightIDs(order.Tickets), len(order.Tickets), time.Now().UTC())
	key := fmt.Sprint(order.ID)

	if err := s.producer.Publish(ctx, s.ordersTopic, key, event); err != nil {
		slog.WarnContext(ctx, "publish order event", "type", eventType, "order_id", order.ID, "error", err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			slog.WarnContext(ctx, "publish order notification", "type", eventType, "order_id", order.ID, "error", err)
		}
	}
}

func flightIDs(tickets []domain.Ticket) []int64 {
	seen := make(map[int64]bool)
	ids := make([]int64, 0)
	for _, t := range tickets {
		if !seen[t.FlightID] {
			seen[t.FlightID] = true
			ids = append(ids, t.FlightID)
		}
	}
	return ids
}

var _ OrderUseCase = (*OrderService)(nil)
