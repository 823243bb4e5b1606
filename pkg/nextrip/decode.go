package nextrip

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/ctdf"
)

func DecodeRoutes(raw []byte) ([]ctdf.Route, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var nextripRoutes []Route
	if err := json.Unmarshal(raw, &nextripRoutes); err != nil {
		return nil, fmt.Errorf("decode routes: %w", err)
	}

	routes := make([]ctdf.Route, 0, len(nextripRoutes))
	for _, route := range nextripRoutes {
		routes = append(routes, ctdf.Route{
			ID:          route.Route,
			Description: route.Description,
		})
	}

	return routes, nil
}

// DecodeDirections keeps only the codes that belong to the fixed direction table.
func DecodeDirections(raw []byte) ([]ctdf.Direction, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var pairs []TextValuePair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode directions: %w", err)
	}

	directions := make([]ctdf.Direction, 0, len(pairs))
	for _, pair := range pairs {
		direction, ok := ctdf.DirectionFromCode(pair.Value)
		if !ok {
			log.Debug().Str("text", pair.Text).Str("value", pair.Value).Msg("Ignoring unknown direction code")
			continue
		}
		directions = append(directions, direction)
	}

	return directions, nil
}

func DecodeStops(raw []byte) ([]ctdf.Stop, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var pairs []TextValuePair
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode stops: %w", err)
	}

	stops := make([]ctdf.Stop, 0, len(pairs))
	for _, pair := range pairs {
		stops = append(stops, ctdf.Stop{
			Code:  pair.Value,
			Label: pair.Text,
		})
	}

	return stops, nil
}

// DecodeDepartures preserves feed order, soonest first. Records with an
// unreadable DepartureTime are skipped; it only fails if none can be read.
func DecodeDepartures(raw []byte) ([]ctdf.Departure, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var timepointDepartures []TimepointDeparture
	if err := json.Unmarshal(raw, &timepointDepartures); err != nil {
		return nil, fmt.Errorf("decode departures: %w", err)
	}

	var lastErr error
	departures := make([]ctdf.Departure, 0, len(timepointDepartures))
	for _, departure := range timepointDepartures {
		departureTime, err := ParseDepartureTime(departure.DepartureTime)
		if err != nil {
			log.Debug().Err(err).Str("text", departure.DepartureText).Msg("Ignoring departure without a readable time")
			lastErr = err
			continue
		}

		departures = append(departures, ctdf.Departure{
			Time:          departureTime,
			DepartureText: departure.DepartureText,
			Actual:        departure.Actual,
		})
	}

	if len(departures) == 0 && lastErr != nil {
		return nil, lastErr
	}

	return departures, nil
}
