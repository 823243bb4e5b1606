package resolver

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/ctdf"
)

// Catalog is the reference data the resolver matches against. The resolver
// always reads through the cache; force is for library callers that need to
// refresh a catalog, the CLI never sets it.
type Catalog interface {
	Routes(ctx context.Context, force bool) []ctdf.Route
	Directions(ctx context.Context, route ctdf.RouteID, force bool) []ctdf.Direction
	Stops(ctx context.Context, route ctdf.RouteID, direction ctdf.Direction, force bool) []ctdf.Stop
}

// Resolver maps user supplied fragments onto catalog entries. Each step
// either yields a single entry or halts with an *Error; ties are never broken.
type Resolver struct {
	Catalog Catalog
}

func (r *Resolver) Route(ctx context.Context, fragment string) (ctdf.Route, error) {
	catalog := r.Catalog.Routes(ctx, false)
	matches := MatchRoutes(fragment, catalog)

	log.Debug().Str("fragment", fragment).Int("matches", len(matches)).Msg("Resolved route")

	switch len(matches) {
	case 0:
		return ctdf.Route{}, &Error{
			Kind:    RouteNotFound,
			Input:   fragment,
			Options: ctdf.RouteDescriptions(catalog),
		}
	case 1:
		return matches[0], nil
	default:
		return ctdf.Route{}, &Error{
			Kind:    RouteAmbiguous,
			Input:   fragment,
			Options: ctdf.RouteDescriptions(matches),
		}
	}
}

// Direction parses the token before looking up the route's directions, so an
// unknown token never fetches the direction catalog. The route itself has
// already been resolved by then.
func (r *Resolver) Direction(ctx context.Context, route ctdf.Route, fragment string) (ctdf.Direction, error) {
	direction, err := ParseDirection(fragment)
	if err != nil {
		return 0, err
	}

	routeDirections, ok := ValidateDirectionForRoute(ctx, r.Catalog, route.ID, direction)
	if !ok {
		return 0, &Error{
			Kind:    DirectionNotOnRoute,
			Input:   fragment,
			Route:   route.ID,
			Options: ctdf.DirectionNames(routeDirections),
		}
	}

	return direction, nil
}

func (r *Resolver) Stop(ctx context.Context, route ctdf.Route, direction ctdf.Direction, fragment string) (ctdf.Stop, error) {
	catalog := r.Catalog.Stops(ctx, route.ID, direction, false)
	matches := MatchStops(fragment, catalog)

	log.Debug().Str("fragment", fragment).Int("matches", len(matches)).Msg("Resolved stop")

	switch len(matches) {
	case 0:
		return ctdf.Stop{}, &Error{
			Kind:    StopNotFound,
			Input:   fragment,
			Route:   route.ID,
			Options: ctdf.StopLabels(catalog),
		}
	case 1:
		return matches[0], nil
	default:
		return ctdf.Stop{}, &Error{
			Kind:    StopAmbiguous,
			Input:   fragment,
			Route:   route.ID,
			Options: ctdf.StopLabels(matches),
		}
	}
}
