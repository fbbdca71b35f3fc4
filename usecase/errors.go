package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks errors caused by input the domain rejected, as
// opposed to storage or delivery failures.
var ErrInvalidInput = errors.New("invalid input")

func Invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
