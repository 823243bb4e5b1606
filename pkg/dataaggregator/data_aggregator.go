package dataaggregator

import (
	"context"
	"encoding/json"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/cachedresults"
	"github.com/travigo/nextbus/pkg/ctdf"
	"github.com/travigo/nextbus/pkg/nextrip"
)

// Aggregator serves the reference catalogs through the cache and departures
// straight from the source.
type Aggregator struct {
	Fetcher Fetcher
	Cache   *cachedresults.Cache
}

func (a *Aggregator) Routes(ctx context.Context, force bool) []ctdf.Route {
	raw := a.Cache.GetOrFetch(ctx, cachedresults.RoutesKey, a.fetch(nextrip.RoutesEndpoint()), force)

	routes, err := nextrip.DecodeRoutes(raw)
	if err != nil {
		log.Debug().Err(err).Msg("Discarding route catalog")
		return nil
	}
	logCatalog("routes", routes)

	return routes
}

func (a *Aggregator) Directions(ctx context.Context, route ctdf.RouteID, force bool) []ctdf.Direction {
	key := cachedresults.DirectionsKey(route)
	raw := a.Cache.GetOrFetch(ctx, key, a.fetch(nextrip.DirectionsEndpoint(string(route))), force)

	directions, err := nextrip.DecodeDirections(raw)
	if err != nil {
		log.Debug().Err(err).Str("route", string(route)).Msg("Discarding direction catalog")
		return nil
	}
	logCatalog(key, directions)

	return directions
}

func (a *Aggregator) Stops(ctx context.Context, route ctdf.RouteID, direction ctdf.Direction, force bool) []ctdf.Stop {
	key := cachedresults.StopsKey(route, direction)
	raw := a.Cache.GetOrFetch(ctx, key, a.fetch(nextrip.StopsEndpoint(string(route), direction.Code())), force)

	stops, err := nextrip.DecodeStops(raw)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Discarding stop catalog")
		return nil
	}
	logCatalog(key, stops)

	return stops
}

// Departures is never cached, departure data is live.
func (a *Aggregator) Departures(ctx context.Context, route ctdf.RouteID, direction ctdf.Direction, stop string) []ctdf.Departure {
	raw := a.Fetcher.Fetch(ctx, nextrip.DeparturesEndpoint(string(route), direction.Code(), stop))

	departures, err := nextrip.DecodeDepartures(raw)
	if err != nil {
		log.Debug().Err(err).Str("route", string(route)).Str("stop", stop).Msg("Discarding departures")
		return nil
	}

	return departures
}

func (a *Aggregator) fetch(endpoint string) cachedresults.FetchFunc {
	return func(ctx context.Context) json.RawMessage {
		return a.Fetcher.Fetch(ctx, endpoint)
	}
}

func logCatalog(name string, catalog any) {
	if event := log.Debug(); event.Enabled() {
		event.Str("catalog", name).Msg(pretty.Sprint(catalog))
	}
}
