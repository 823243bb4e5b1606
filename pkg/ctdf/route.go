package ctdf

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RouteID identifies a route. Feeds send it either as a string or a number.
type RouteID string

func (r *RouteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RouteID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("route identifier %s is neither a string nor a number: %w", data, err)
	}
	*r = RouteID(n.String())

	return nil
}

type Route struct {
	ID          RouteID
	Description string
}

func RouteDescriptions(routes []Route) []string {
	descriptions := make([]string, 0, len(routes))
	for _, route := range routes {
		descriptions = append(descriptions, route.Description)
	}

	return descriptions
}
