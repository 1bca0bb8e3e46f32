package find

import "fmt"

// PatternError reports a search pattern that failed to compile.
// The previous search and its results are left in place.
type PatternError struct {
	Pattern string
	Engine  PatternEngine
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("find: invalid %s pattern %q: %v", e.Engine, e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
