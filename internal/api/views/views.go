// Package views holds the read-only projections returned by the HTTP and gRPC APIs.
package views

import (
	"time"

	"github.com/Domenick1991/airlines/internal/domain"
)

type RouteView struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

type FlightView struct {
	ID               int64     `json:"id"`
	Route            RouteView `json:"route"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TimeOfFlight     string    `json:"time_of_flight"`
	TicketsAvailable int       `json:"tickets_available"`
}

func Flight(f domain.Flight) FlightView {
	return FlightView{
		ID: f.ID,
		Route: RouteView{
			Source:      f.Route.Source.City,
			Destination: f.Route.Destination.City,
			Distance:    f.Route.Distance,
		},
		Airplane:         f.Airplane.Name,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		TimeOfFlight:     f.Duration().String(),
		TicketsAvailable: f.TicketsAvailable(),
	}
}

func Flights(flights []domain.Flight) []FlightView {
	out := make([]FlightView, 0, len(flights))
	for _, f := range flights {
		out = append(out, Flight(f))
	}
	return out
}

// WaysResult is the value of the "result" key: a flight list, a list of
// [first, second] leg pairs or the no-flights message.
func WaysResult(res *domain.SearchResult) interface{} {
	switch res.Kind {
	case domain.ResultDirect:
		return Flights(res.Direct)
	case domain.ResultTransfer:
		pairs := make([][]FlightView, 0, len(res.Transfers))
		for _, c := range res.Transfers {
			pairs = append(pairs, []FlightView{Flight(c.First), Flight(c.Second)})
		}
		return pairs
	default:
		return res.Message
	}
}
