package domain

import "time"

type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Ticket struct {
	ID        int64     `json:"id"`
	FlightID  int64     `json:"flight"`
	Row       int       `json:"row"`
	Seat      int       `json:"seat"`
	Passenger Passenger `json:"passenger"`
}

type Order struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Cancelled bool      `json:"is_cancelled"`
	CreatedAt time.Time `json:"created_at"`
	Tickets   []Ticket  `json:"tickets"`
}
