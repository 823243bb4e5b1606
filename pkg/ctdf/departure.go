package ctdf

import "time"

type Departure struct {
	Time time.Time

	// DepartureText is what the feed shows on signage, e.g. "5 Min" or "14:05".
	DepartureText string
	Actual        bool
}
