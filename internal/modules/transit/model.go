// README: Transit schedule result shapes.
package transit

// Transfer is one transit leg within a route.
type Transfer struct {
	From          string `json:"from"`
	To            string `json:"to"`
	Line          string `json:"line"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

// Route is one door-to-door transit option.
type Route struct {
	From          string     `json:"from"`
	To            string     `json:"to"`
	DepartureTime string     `json:"departureTime"`
	ArrivalTime   string     `json:"arrivalTime"`
	DurationSec   int        `json:"duration"`
	Transfers     []Transfer `json:"transfers"`
}
