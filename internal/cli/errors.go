package cli

import "fmt"

type invalidArgError struct {
	name   string
	value  string
	reason string
	err    error
}

func (e invalidArgError) Error() string {
	if e.reason == "" {
		return fmt.Sprintf("invalid %s: %q", e.name, e.value)
	}
	return fmt.Sprintf("invalid %s: %q (%s)", e.name, e.value, e.reason)
}

func (e invalidArgError) Unwrap() error { return e.err }

func errInvalidArg(name, value, reason string, err error) error {
	return invalidArgError{name: name, value: value, reason: reason, err: err}
}
