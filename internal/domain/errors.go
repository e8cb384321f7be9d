package domain

import "errors"

var (
	// ErrInvalidInput reports a query that violates the data model: a negative
	// genus, a non-positive group order, a stabilizer order that cannot divide
	// the group order or a rotation index that is not a unit.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnboundedInput reports a query whose candidate group orders are not finite.
	ErrUnboundedInput = errors.New("unbounded input")
)

// displayedError marks an error the UI has already shown to the user.
type displayedError struct {
	err error
}

func (e displayedError) Error() string { return e.err.Error() }

func (e displayedError) Unwrap() error { return e.err }

func displayed(err error) error {
	if err == nil {
		return nil
	}

	return displayedError{err: err}
}

// IsDisplayed reports whether err was already shown by the UI.
func IsDisplayed(err error) bool {
	var d displayedError
	return errors.As(err, &d)
}
