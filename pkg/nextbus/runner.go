package nextbus

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nextbus/pkg/cachedresults"
	"github.com/travigo/nextbus/pkg/config"
	"github.com/travigo/nextbus/pkg/dataaggregator"
	"github.com/travigo/nextbus/pkg/departureboard"
	"github.com/travigo/nextbus/pkg/nextrip"
	"github.com/travigo/nextbus/pkg/resolver"
)

// Query is the raw user input, in command line order.
type Query struct {
	Route     string
	Stop      string
	Direction string
}

// Runner resolves a Query step by step and prints the wait for the next bus.
type Runner struct {
	Resolver *resolver.Resolver
	Board    *departureboard.DepartureBoard
	Out      io.Writer

	cache *cachedresults.Cache
}

// NewRunner wires a fresh cache and NexTrip client for one invocation.
func NewRunner(ctx context.Context, cfg *config.Config, out io.Writer) (*Runner, error) {
	cache, err := cachedresults.Setup(ctx, cfg.Cache, cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	aggregator := &dataaggregator.Aggregator{
		Fetcher: nextrip.NewClient(cfg.BaseURL, cfg.HTTPTimeout.Std()),
		Cache:   cache,
	}

	return &Runner{
		Resolver: &resolver.Resolver{Catalog: aggregator},
		Board:    &departureboard.DepartureBoard{Source: aggregator},
		Out:      out,
		cache:    cache,
	}, nil
}

func (r *Runner) Close() error {
	if r.cache == nil {
		return nil
	}

	return r.cache.Close()
}

// Run halts at the first step that cannot be resolved and returns its error.
// Nothing is written to Out unless a wait was computed.
func (r *Runner) Run(ctx context.Context, query Query) error {
	route, err := r.Resolver.Route(ctx, query.Route)
	if err != nil {
		return report(err)
	}

	direction, err := r.Resolver.Direction(ctx, route, query.Direction)
	if err != nil {
		return report(err)
	}

	stop, err := r.Resolver.Stop(ctx, route, direction, query.Stop)
	if err != nil {
		return report(err)
	}

	log.Debug().
		Str("route", string(route.ID)).
		Str("direction", direction.String()).
		Str("stop", stop.Code).
		Msg("Resolved query")

	wait, err := r.Board.NextDeparture(ctx, route.ID, direction, stop.Code)
	if err != nil {
		return report(err)
	}

	_, err = fmt.Fprintf(r.Out, "%d minutes\n", wait.Minutes())
	return err
}

func report(err error) error {
	if errors.Is(err, departureboard.ErrNoDepartureData) {
		log.Debug().Err(err).Msg("No upcoming departure")
	} else {
		log.Error().Msg(err.Error())
	}

	return err
}
