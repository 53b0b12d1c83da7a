package lake

import "errors"

// ErrNoOutlet a sink from which no boundary can be reached.
var ErrNoOutlet = errors.New("depression has no reachable outlet")
