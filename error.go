package vcui

import (
	"errors"
	"fmt"
	"log"
)

// Configuration errors. They are returned by the call that introduced the bad value, never coerced.
var (
	ErrInvalidCategory    = errors.New("invalid event category")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMode        = errors.New("invalid mode")
	ErrInvalidHook        = errors.New("invalid lifecycle hook")
	ErrInvalidButton      = errors.New("invalid mouse button")
	ErrUnsupported        = errors.New("unsupported configuration")
	ErrIndex              = errors.New("index out of range")
	ErrNoBackend          = errors.New("no backend")
	ErrNoController       = errors.New("no view controller")
)

func invalid(err error, what string, v interface{}) error {
	return fmt.Errorf("%s %v: %w", what, v, err)
}

// logf logs benign conditions: stale references, unmatched button releases, draw failures.
func logf(format string, args ...interface{}) {
	log.Printf("vcui: "+format, args...)
}
