package domain

import "time"

type Airport struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	City string `json:"closest_big_city"`
}

type Route struct {
	ID          int64   `json:"id"`
	Source      Airport `json:"source"`
	Destination Airport `json:"destination"`
	Distance    int     `json:"distance"`
}

type Airplane struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Type       string `json:"airplane_type"`
}

func (a Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// HasSeat reports whether row and seat (both 1-based) exist on the airplane.
func (a Airplane) HasSeat(row, seat int) bool {
	return row >= 1 && row <= a.Rows && seat >= 1 && seat <= a.SeatsInRow
}

type Flight struct {
	ID            int64     `json:"id"`
	Route         Route     `json:"route"`
	Airplane      Airplane  `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Completed     bool      `json:"is_completed"`
	TicketsTaken  int       `json:"tickets_taken"`
}

func (f Flight) TicketsAvailable() int {
	return f.Airplane.Capacity() - f.TicketsTaken
}

func (f Flight) Duration() time.Duration {
	return f.ArrivalTime.Sub(f.DepartureTime)
}

// FlightFilter narrows a flight query. Zero values are ignored.
// DepartureAfter and DepartureBefore are exclusive bounds.
type FlightFilter struct {
	RouteID         int64
	DepartureAfter  time.Time
	DepartureBefore time.Time
	DepartureDate   string
	Limit           int
	Offset          int
}
