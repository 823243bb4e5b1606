package resolver

import (
	"fmt"

	"github.com/travigo/nextbus/pkg/ctdf"
	"github.com/travigo/nextbus/pkg/util"
)

// Kind classifies why a resolution step halted. A Kind can be used as the
// target of errors.Is.
type Kind int

const (
	RouteNotFound Kind = iota + 1
	RouteAmbiguous
	UnknownDirectionToken
	DirectionNotOnRoute
	StopNotFound
	StopAmbiguous
)

func (k Kind) String() string {
	switch k {
	case RouteNotFound:
		return "RouteNotFound"
	case RouteAmbiguous:
		return "RouteAmbiguous"
	case UnknownDirectionToken:
		return "UnknownDirectionToken"
	case DirectionNotOnRoute:
		return "DirectionNotOnRoute"
	case StopNotFound:
		return "StopNotFound"
	case StopAmbiguous:
		return "StopAmbiguous"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

// Error reports a halted resolution step with the offending input and the
// alternatives the user could have picked.
type Error struct {
	Kind  Kind
	Input string
	Route ctdf.RouteID

	// Options is the full catalog for not-found kinds and the matching
	// entries for ambiguous kinds.
	Options []string
}

func (e *Error) Error() string {
	options := util.QuoteList(e.Options)

	switch e.Kind {
	case RouteNotFound:
		return fmt.Sprintf("No valid route for %s. Valid routes are: %s", e.Input, options)
	case RouteAmbiguous:
		return fmt.Sprintf("Route %s was ambiguous, matches: %s", e.Input, options)
	case UnknownDirectionToken:
		return fmt.Sprintf("%s is not a valid direction. Valid directions are: %s", e.Input, options)
	case DirectionNotOnRoute:
		return fmt.Sprintf("%s is not a valid direction. Valid directions for route %s are: %s", e.Input, e.Route, options)
	case StopNotFound:
		return fmt.Sprintf("No valid stop for %s. Valid stops are: %s", e.Input, options)
	case StopAmbiguous:
		return fmt.Sprintf("Stop %s was ambiguous, matches: %s", e.Input, options)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Input)
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}
