package flights

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Domenick1991/airlines/internal/domain"
	"github.com/Domenick1991/airlines/internal/kafka"
	"github.com/Domenick1991/airlines/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	CompleteDeparted(ctx context.Context, now time.Time) ([]int64, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context, key string) ([]domain.Flight, error)
	SetFlights(ctx context.Context, key string, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	repo     repository.FlightRepository
	cache    FlightCache
	producer Producer
	topic    string
}

type FlightServiceOption func(*FlightService)

// WithEvents publishes a flight_completed event per completed flight to topic.
func WithEvents(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, opts ...FlightServiceOption) *FlightService {
	s := &FlightService{repo: repo, cache: cache}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context, filter domain.FlightFilter) ([]domain.Flight, error) {
	if filter.DepartureDate != "" {
		if _, err := time.Parse("2006-01-02", filter.DepartureDate); err != nil {
			return nil, fmt.Errorf("%w: departure_date %q", domain.ErrInvalidDate, filter.DepartureDate)
		}
	}

	key := cacheKey(filter)
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, key, flights); err != nil {
			slog.WarnContext(ctx, "cache flights", "key", key, "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

// CompleteDeparted flags flights that already departed and returns their ids.
func (s *FlightService) CompleteDeparted(ctx context.Context, now time.Time) ([]int64, error) {
	ids, err := s.repo.CompleteDeparted(ctx, now)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return ids, nil
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			slog.WarnContext(ctx, "invalidate flights cache", "error", err)
		}
	}
	if s.producer != nil && s.topic != "" {
		for _, id := range ids {
			event := kafka.NewFlightEvent(kafka.EventFlightCompleted, id, now)
			if err := s.producer.Publish(ctx, s.topic, fmt.Sprint(id), event); err != nil {
				slog.WarnContext(ctx, "publish flight event", "flight_id", id, "error", err)
			}
		}
	}
	return ids, nil
}

func cacheKey(f domain.FlightFilter) string {
	return fmt.Sprintf("route=%d:date=%s:limit=%d:offset=%d", f.RouteID, f.DepartureDate, f.Limit, f.Offset)
}

var _ FlightUseCase = (*FlightService)(nil)
