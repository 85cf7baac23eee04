package game

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates malformed call parameters, e.g. a draw count
// of zero. Fatal to the call; never retried.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidQuery indicates a zone query with no usable criteria.
var ErrInvalidQuery = errors.New("invalid query: at least one of name, type, or tag must be provided")

// ConfigError indicates a deck recipe that cannot satisfy its constraints.
// Raised at deck-build time, before any trials run.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("deck configuration: %s", e.Reason)
}
