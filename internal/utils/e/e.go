// Package e holds the error-wrapping helpers used across the module.
package e

import "fmt"

// Wrap annotates err with msg, passing nil through.
func Wrap(msg string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapIfErr is Wrap behind a condition, for deferred cleanup paths.
func WrapIfErr(msg string, err *error) {
	if *err != nil {
		*err = Wrap(msg, *err)
	}
}
