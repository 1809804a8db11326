package schema

import "fmt"

// MissingFieldError reports a required property absent from schema json.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("schema json is missing required field %q", e.Field)
}

// TypeMismatchError reports a property present in schema json but of the
// wrong json kind.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("schema json field %q should be %s but is %s", e.Field, e.Want, e.Got)
}

// UnknownTypeTagError reports a type discriminator that is not one of the
// known variants.
type UnknownTypeTagError struct {
	Tag string
}

func (e *UnknownTypeTagError) Error() string {
	return fmt.Sprintf("unknown data type %q", e.Tag)
}

// HandleError reports a failure to obtain schema json from an engine handle.
type HandleError struct {
	Err error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("could not fetch schema from engine handle: %v", e.Err)
}

func (e *HandleError) Unwrap() error {
	return e.Err
}
