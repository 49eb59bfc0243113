// Package errorkit holds the error primitives shared across prelude.
//
// Every hard failure in prelude is a constant errorkit.Error value,
// so callers can match them with errors.Is even after recovering a panic.
package errorkit

import "errors"

// Merge will combine all given non nil error values into a single error value.
// If no valid error is given, nil is returned.
// If only a single non nil error value is given, the error value is returned.
func Merge(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return errors.Join(nonNil...)
	}
}

// Recover will turn a panic that carries an error value back into a regular error.
// Panics with non-error values are re-raised.
//
// Usage:
//
//	defer errorkit.Recover(&returnErr)
func Recover(returnErr *error) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		panic(r)
	}
	*returnErr = Merge(*returnErr, err)
}
