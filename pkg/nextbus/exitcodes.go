package nextbus

import (
	"errors"

	"github.com/travigo/nextbus/pkg/departureboard"
	"github.com/travigo/nextbus/pkg/resolver"
)

const (
	ExitSuccess = iota
	ExitUsage
	ExitRouteNotFound
	ExitRouteAmbiguous
	ExitUnknownDirection
	ExitDirectionNotOnRoute
	ExitStopNotFound
	ExitStopAmbiguous
	ExitNoDepartureData
)

// ExitFailure covers errors outside the resolution steps, such as a cache
// backend that cannot be reached.
const ExitFailure = ExitUsage

func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, resolver.RouteNotFound):
		return ExitRouteNotFound
	case errors.Is(err, resolver.RouteAmbiguous):
		return ExitRouteAmbiguous
	case errors.Is(err, resolver.UnknownDirectionToken):
		return ExitUnknownDirection
	case errors.Is(err, resolver.DirectionNotOnRoute):
		return ExitDirectionNotOnRoute
	case errors.Is(err, resolver.StopNotFound):
		return ExitStopNotFound
	case errors.Is(err, resolver.StopAmbiguous):
		return ExitStopAmbiguous
	case errors.Is(err, departureboard.ErrNoDepartureData):
		return ExitNoDepartureData
	}

	return ExitFailure
}
