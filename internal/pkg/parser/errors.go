package parser

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

// Parse failures come in exactly two kinds. Callers distinguish them
// with errors.Is or the predicates below; everything else about a
// failure is carried in the message.
var (
	// ErrRequiredArgumentMissing reports a required switch or positional
	// argument that never received a value.
	ErrRequiredArgumentMissing = fmt.Errorf("required argument missing: %w", errdefs.ErrFailedPrecondition)

	// ErrMalformedArgument reports a value that was present but failed
	// its kind's grammar, or a switch-shaped token where a value was
	// expected.
	ErrMalformedArgument = fmt.Errorf("malformed argument: %w", errdefs.ErrInvalidArgument)
)

func requiredMissingf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrRequiredArgumentMissing)
}

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedArgument)
}

func IsRequiredArgumentMissing(err error) bool {
	return errors.Is(err, ErrRequiredArgumentMissing)
}

func IsMalformedArgument(err error) bool {
	return errors.Is(err, ErrMalformedArgument)
}
