package dataaggregator

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/nextbus/pkg/cachedresults"
	"github.com/travigo/nextbus/pkg/ctdf"
)

type fakeFetcher struct {
	responses map[string]string
	calls     map[string]int
}

func (f *fakeFetcher) Fetch(_ context.Context, endpoint string) json.RawMessage {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[endpoint]++

	response, ok := f.responses[endpoint]
	if !ok {
		return nil
	}
	return json.RawMessage(response)
}

func newAggregator(fetcher *fakeFetcher) *Aggregator {
	return &Aggregator{
		Fetcher: fetcher,
		Cache:   cachedresults.New(cachedresults.NewMemoryStore(16, 0)),
	}
}

func TestAggregatorCatalogsAreCached(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"Routes":         `[{"Description":"METRO Blue Line","Route":"901"}]`,
		"Directions/901": `[{"Text":"NORTHBOUND","Value":"4"},{"Text":"SOUTHBOUND","Value":"1"}]`,
		"Stops/901/4":    `[{"Text":"Mall of America Station","Value":"MAAM"}]`,
	}}
	aggregator := newAggregator(fetcher)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.Equal(t, []ctdf.Route{{ID: "901", Description: "METRO Blue Line"}}, aggregator.Routes(ctx, false))
		assert.Equal(t, []ctdf.Direction{ctdf.DirectionNorth, ctdf.DirectionSouth}, aggregator.Directions(ctx, "901", false))
		assert.Equal(t, []ctdf.Stop{{Code: "MAAM", Label: "Mall of America Station"}}, aggregator.Stops(ctx, "901", ctdf.DirectionNorth, false))
	}

	assert.Equal(t, 1, fetcher.calls["Routes"])
	assert.Equal(t, 1, fetcher.calls["Directions/901"])
	assert.Equal(t, 1, fetcher.calls["Stops/901/4"])

	aggregator.Routes(ctx, true)
	assert.Equal(t, 2, fetcher.calls["Routes"])
}

func TestAggregatorDeparturesAreNotCached(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"901/4/MAAM": `[{"DepartureText":"6 Min","DepartureTime":"\/Date(1570000360000-0500)\/"}]`,
	}}
	aggregator := newAggregator(fetcher)

	for i := 0; i < 2; i++ {
		departures := aggregator.Departures(context.Background(), "901", ctdf.DirectionNorth, "MAAM")
		assert.Len(t, departures, 1)
		assert.Equal(t, time.Unix(1570000360, 0), departures[0].Time)
	}

	assert.Equal(t, 2, fetcher.calls["901/4/MAAM"])
}

func TestAggregatorMissingAndMalformed(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"Routes":     `{"unexpected":"shape"}`,
		"901/4/MAAM": `[{"DepartureTime":"soon"}]`,
	}}
	aggregator := newAggregator(fetcher)
	ctx := context.Background()

	assert.Empty(t, aggregator.Routes(ctx, false))
	assert.Empty(t, aggregator.Directions(ctx, "901", false))
	assert.Empty(t, aggregator.Stops(ctx, "901", ctdf.DirectionNorth, false))
	assert.Empty(t, aggregator.Departures(ctx, "901", ctdf.DirectionNorth, "MAAM"))

	// Missing catalogs were not cached, so they are fetched again.
	aggregator.Directions(ctx, "901", false)
	assert.Equal(t, 2, fetcher.calls["Directions/901"])
}

func TestAggregatorDeparturesKeepReadableRecords(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]string{
		"5/4/MAAM": `[{"DepartureText":"6 Min","DepartureTime":"\/Date(1570000360000-0500)\/"},{"DepartureTime":""}]`,
	}}
	aggregator := newAggregator(fetcher)

	departures := aggregator.Departures(context.Background(), "5", ctdf.DirectionNorth, "MAAM")
	assert.Len(t, departures, 1)
	assert.Equal(t, time.Unix(1570000360, 0), departures[0].Time)
}
