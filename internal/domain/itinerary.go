package domain

type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultDirect
	ResultTransfer
)

func (k ResultKind) String() string {
	switch k {
	case ResultDirect:
		return "direct"
	case ResultTransfer:
		return "transfer"
	default:
		return "empty"
	}
}

// Connection is a two-leg itinerary through one intermediate airport.
type Connection struct {
	First  Flight
	Second Flight
}

// SearchResult holds exactly one of Direct, Transfers or Message, selected by Kind.
type SearchResult struct {
	Kind      ResultKind
	Direct    []Flight
	Transfers []Connection
	Message   string
}
