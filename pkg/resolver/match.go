package resolver

import (
	"context"

	"github.com/travigo/nextbus/pkg/ctdf"
	"github.com/travigo/nextbus/pkg/util"
	"golang.org/x/exp/slices"
)

// MatchRoutes returns every route whose description contains fragment, ignoring case.
func MatchRoutes(fragment string, catalog []ctdf.Route) []ctdf.Route {
	return util.Filter(catalog, func(route ctdf.Route) bool {
		return util.ContainsFold(route.Description, fragment)
	})
}

// MatchStops returns every stop whose label contains fragment, ignoring case.
func MatchStops(fragment string, catalog []ctdf.Stop) []ctdf.Stop {
	return util.Filter(catalog, func(stop ctdf.Stop) bool {
		return util.ContainsFold(stop.Label, fragment)
	})
}

// ParseDirection resolves a direction token without touching the network.
func ParseDirection(fragment string) (ctdf.Direction, error) {
	direction, err := ctdf.ParseDirection(fragment)
	if err != nil {
		return 0, &Error{
			Kind:    UnknownDirectionToken,
			Input:   fragment,
			Options: ctdf.DirectionNames(ctdf.AllDirections()),
		}
	}

	return direction, nil
}

// ValidateDirectionForRoute reports whether direction is served by route, along
// with the directions the route does serve.
func ValidateDirectionForRoute(ctx context.Context, catalog Catalog, route ctdf.RouteID, direction ctdf.Direction) ([]ctdf.Direction, bool) {
	directions := catalog.Directions(ctx, route, false)

	return directions, slices.Contains(directions, direction)
}
