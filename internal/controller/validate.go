package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// request is the user input for a new job
type request struct {
	Source      string `validate:"required"`
	Destination string `validate:"required,dir"`
}

// newRequest trims user input
func newRequest(source, destination string) request {
	return request{
		Source:      strings.TrimSpace(source),
		Destination: strings.TrimSpace(destination),
	}
}

// validate checks that the source is present and the destination is an
// existing directory. Only the first failing rule is reported.
func (r request) validate(msgs Messages) *ValidationError {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Field: FieldDestination, Message: msgs.InvalidDestination}
	}

	fe := verrs[0]
	switch {
	case fe.Field() == FieldSource:
		return &ValidationError{Field: FieldSource, Message: msgs.EmptySource}
	case fe.Tag() == "required":
		return &ValidationError{Field: FieldDestination, Message: msgs.EmptyDestination}
	default:
		return &ValidationError{Field: FieldDestination, Message: msgs.InvalidDestination}
	}
}
