package cachedresults

import (
	"fmt"

	"github.com/travigo/nextbus/pkg/ctdf"
)

const RoutesKey = "routes"

func DirectionsKey(route ctdf.RouteID) string {
	return fmt.Sprintf("directions:%s", route)
}

func StopsKey(route ctdf.RouteID, direction ctdf.Direction) string {
	return fmt.Sprintf("stops:%s:%s", route, direction.Code())
}
