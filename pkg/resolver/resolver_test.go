package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/nextbus/pkg/ctdf"
)

type fakeCatalog struct {
	routes     []ctdf.Route
	directions map[ctdf.RouteID][]ctdf.Direction
	stops      map[ctdf.RouteID][]ctdf.Stop

	routeCalls     int
	directionCalls int
	stopCalls      int
}

func (c *fakeCatalog) Routes(_ context.Context, _ bool) []ctdf.Route {
	c.routeCalls++
	return c.routes
}

func (c *fakeCatalog) Directions(_ context.Context, route ctdf.RouteID, _ bool) []ctdf.Direction {
	c.directionCalls++
	return c.directions[route]
}

func (c *fakeCatalog) Stops(_ context.Context, route ctdf.RouteID, _ ctdf.Direction, _ bool) []ctdf.Stop {
	c.stopCalls++
	return c.stops[route]
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		routes: []ctdf.Route{
			{ID: "5", Description: "5 - Brooklyn Ctr - Fremont Av - 26th Av - Chicago - MOA"},
			{ID: "515", Description: "515 - Bloomington Ave - 66th St - Southdale"},
			{ID: "901", Description: "METRO Blue Line"},
		},
		directions: map[ctdf.RouteID][]ctdf.Direction{
			"5": {ctdf.DirectionNorth, ctdf.DirectionSouth},
		},
		stops: map[ctdf.RouteID][]ctdf.Stop{
			"5": {
				{Code: "MAAM", Label: "Mall of America Transit Station"},
				{Code: "BCTC", Label: "Brooklyn Center Transit Center"},
				{Code: "CHLA", Label: "Chicago Ave and Lake St"},
			},
		},
	}
}

func TestMatchRoutes(t *testing.T) {
	catalog := newCatalog().routes

	tests := []struct {
		fragment string
		expected []ctdf.RouteID
	}{
		{"5 - Brooklyn Ctr", []ctdf.RouteID{"5"}},
		{"5 - brooklyn ctr", []ctdf.RouteID{"5"}},
		{"blue", []ctdf.RouteID{"901"}},
		{"5", []ctdf.RouteID{"5", "515"}},
		{"lol", nil},
		{"", []ctdf.RouteID{"5", "515", "901"}},
	}

	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			var ids []ctdf.RouteID
			for _, route := range MatchRoutes(tt.fragment, catalog) {
				ids = append(ids, route.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestMatchStops(t *testing.T) {
	catalog := newCatalog().stops["5"]

	assert.Len(t, MatchStops("mall of america", catalog), 1)
	assert.Len(t, MatchStops("transit", catalog), 2)
	assert.Len(t, MatchStops("a", catalog), 3)
	assert.Empty(t, MatchStops("adwds", catalog))
}

func TestResolveRoute(t *testing.T) {
	r := &Resolver{Catalog: newCatalog()}

	route, err := r.Route(context.Background(), "5 - Brooklyn Ctr")
	require.NoError(t, err)
	assert.Equal(t, ctdf.RouteID("5"), route.ID)
}

func TestResolveRouteNotFound(t *testing.T) {
	r := &Resolver{Catalog: newCatalog()}

	_, err := r.Route(context.Background(), "lol")
	require.ErrorIs(t, err, RouteNotFound)

	var resolveErr *Error
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, ctdf.RouteDescriptions(newCatalog().routes), resolveErr.Options)
	assert.Contains(t, err.Error(), "No valid route for lol. Valid routes are:")
}

func TestResolveRouteAmbiguous(t *testing.T) {
	r := &Resolver{Catalog: newCatalog()}

	_, err := r.Route(context.Background(), "5")
	require.ErrorIs(t, err, RouteAmbiguous)
	assert.NotErrorIs(t, err, RouteNotFound)

	var resolveErr *Error
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, []string{
		"5 - Brooklyn Ctr - Fremont Av - 26th Av - Chicago - MOA",
		"515 - Bloomington Ave - 66th St - Southdale",
	}, resolveErr.Options)
	assert.Contains(t, err.Error(), "Route 5 was ambiguous, matches:")
}

func TestResolveDirection(t *testing.T) {
	catalog := newCatalog()
	r := &Resolver{Catalog: catalog}
	route := catalog.routes[0]

	direction, err := r.Direction(context.Background(), route, "NORTH")
	require.NoError(t, err)
	assert.Equal(t, ctdf.DirectionNorth, direction)
}

func TestResolveDirectionUnknownTokenSkipsCatalog(t *testing.T) {
	catalog := newCatalog()
	r := &Resolver{Catalog: catalog}

	_, err := r.Direction(context.Background(), catalog.routes[0], "lol")
	require.ErrorIs(t, err, UnknownDirectionToken)
	assert.Equal(t, 0, catalog.directionCalls)
	assert.Equal(t, `lol is not a valid direction. Valid directions are: ["south", "east", "west", "north"]`, err.Error())
}

func TestResolveDirectionNotOnRoute(t *testing.T) {
	catalog := newCatalog()
	r := &Resolver{Catalog: catalog}

	_, err := r.Direction(context.Background(), catalog.routes[0], "east")
	require.ErrorIs(t, err, DirectionNotOnRoute)
	assert.Equal(t, 1, catalog.directionCalls)
	assert.Equal(t, `east is not a valid direction. Valid directions for route 5 are: ["north", "south"]`, err.Error())
}

func TestValidateDirectionForRoute(t *testing.T) {
	catalog := newCatalog()

	directions, ok := ValidateDirectionForRoute(context.Background(), catalog, "5", ctdf.DirectionSouth)
	assert.True(t, ok)
	assert.Equal(t, []ctdf.Direction{ctdf.DirectionNorth, ctdf.DirectionSouth}, directions)

	_, ok = ValidateDirectionForRoute(context.Background(), catalog, "5", ctdf.DirectionWest)
	assert.False(t, ok)

	directions, ok = ValidateDirectionForRoute(context.Background(), catalog, "901", ctdf.DirectionNorth)
	assert.False(t, ok)
	assert.Empty(t, directions)
}

func TestResolveStop(t *testing.T) {
	catalog := newCatalog()
	r := &Resolver{Catalog: catalog}
	route := catalog.routes[0]

	stop, err := r.Stop(context.Background(), route, ctdf.DirectionNorth, "Mall of America")
	require.NoError(t, err)
	assert.Equal(t, "MAAM", stop.Code)

	_, err = r.Stop(context.Background(), route, ctdf.DirectionNorth, "adwds")
	require.ErrorIs(t, err, StopNotFound)
	assert.Contains(t, err.Error(), "No valid stop for adwds. Valid stops are:")

	var resolveErr *Error
	require.True(t, errors.As(err, &resolveErr))
	assert.Equal(t, ctdf.StopLabels(catalog.stops["5"]), resolveErr.Options)

	_, err = r.Stop(context.Background(), route, ctdf.DirectionNorth, "a")
	require.ErrorIs(t, err, StopAmbiguous)
	assert.Contains(t, err.Error(), "Stop a was ambiguous, matches: ")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "StopAmbiguous", StopAmbiguous.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}
