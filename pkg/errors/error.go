package errors

import "github.com/pkg/errors"

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message, attaching a stack trace if err has none.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}
