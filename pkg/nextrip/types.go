package nextrip

import "github.com/travigo/nextbus/pkg/ctdf"

type Route struct {
	Description string       `json:"Description"`
	ProviderID  string       `json:"ProviderID"`
	Route       ctdf.RouteID `json:"Route"`
}

// TextValuePair is used by both the Directions and Stops endpoints.
type TextValuePair struct {
	Text  string `json:"Text"`
	Value string `json:"Value"`
}

type TimepointDeparture struct {
	Actual         bool   `json:"Actual"`
	Description    string `json:"Description"`
	DepartureText  string `json:"DepartureText"`
	DepartureTime  string `json:"DepartureTime"`
	Route          string `json:"Route"`
	RouteDirection string `json:"RouteDirection"`
	Terminal       string `json:"Terminal"`
}
