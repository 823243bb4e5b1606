package departureboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/ctdf"
)

// ErrNoDepartureData is returned when the feed has no usable upcoming departure.
var ErrNoDepartureData = errors.New("no departure data")

type Source interface {
	Departures(ctx context.Context, route ctdf.RouteID, direction ctdf.Direction, stop string) []ctdf.Departure
}

type DepartureBoard struct {
	Source Source

	// Now defaults to time.Now.
	Now func() time.Time
}

type Wait struct {
	Departure time.Time
	Duration  time.Duration
}

// Minutes is the wait in whole minutes, remaining seconds are dropped.
func (w *Wait) Minutes() int {
	return int(w.Duration / time.Minute)
}

// NextDeparture returns the wait until the first departure the feed lists for
// the stop.
func (b *DepartureBoard) NextDeparture(ctx context.Context, route ctdf.RouteID, direction ctdf.Direction, stop string) (*Wait, error) {
	departures := b.Source.Departures(ctx, route, direction, stop)
	if len(departures) == 0 {
		return nil, ErrNoDepartureData
	}

	now := b.now()
	next := departures[0]

	log.Debug().Time("now", now).Msg("Current time")
	log.Debug().Time("departure", next.Time).Str("text", next.DepartureText).Bool("actual", next.Actual).Msg("Next departure")

	wait := &Wait{
		Departure: next.Time,
		Duration:  next.Time.Sub(now),
	}

	if wait.Duration < 0 {
		return nil, fmt.Errorf("%w: departure at %s has already passed", ErrNoDepartureData, next.Time.Format(time.RFC3339))
	}

	log.Debug().Str("wait", wait.Duration.String()).Msg("Computed wait")

	return wait, nil
}

func (b *DepartureBoard) now() time.Time {
	if b.Now == nil {
		return time.Now()
	}

	return b.Now()
}
