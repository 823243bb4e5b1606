package dataaggregator

import (
	"context"
	"encoding/json"
)

// Fetcher returns the JSON document at endpoint, or nothing if it could not be fetched.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) json.RawMessage
}
