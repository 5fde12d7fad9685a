package dijkstra

import (
	"errors"
	"math"
)

// Unreached is the sentinel distance of a city no path has reached.
// It is strictly greater than every finite route distance and is never
// used as an operand of an addition.
const Unreached = int64(math.MaxInt64)

// NoPredecessor marks a city with no predecessor on any known route:
// the source itself, and every unreachable city.
const NoPredecessor = -1

// Sentinel errors returned by the engine and its post-run queries.
var (
	// ErrNilGraph indicates Run was called with a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadSource indicates the source city index is out of range.
	ErrBadSource = errors.New("dijkstra: source index out of range")

	// ErrNoRoute indicates the requested destination is unreachable from
	// the run's source.
	ErrNoRoute = errors.New("dijkstra: no route to destination")
)
