package ctdf

// Stop is a boarding location, only meaningful for one route and direction.
type Stop struct {
	Code  string
	Label string
}

func StopLabels(stops []Stop) []string {
	labels := make([]string, 0, len(stops))
	for _, stop := range stops {
		labels = append(labels, stop.Label)
	}

	return labels
}
