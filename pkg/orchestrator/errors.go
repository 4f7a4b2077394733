package orchestrator

import "errors"

// ErrNoOutputPath is returned when Run is called without a resolved output path.
var ErrNoOutputPath = errors.New("no output path")
