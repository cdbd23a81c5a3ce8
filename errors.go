package nargs

import (
	"fmt"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// ErrorCode identifies the most recent value error seen while scanning.
// It is not a log: only the last failure is kept.
type ErrorCode int

const (
	OK ErrorCode = iota
	MissingString
	MissingInteger
	InvalidInteger
	MissingDouble
	InvalidDouble
)

func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "OK"
	case MissingString:
		return "MISSING_STRING"
	case MissingInteger:
		return "MISSING_INTEGER"
	case InvalidInteger:
		return "INVALID_INTEGER"
	case MissingDouble:
		return "MISSING_DOUBLE"
	case InvalidDouble:
		return "INVALID_DOUBLE"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// missingCode is the code for a flag of kind k that had no following token.
func missingCode(k valueKind) ErrorCode {
	switch k {
	case stringKind:
		return MissingString
	case intKind:
		return MissingInteger
	case doubleKind:
		return MissingDouble
	default:
		return OK
	}
}

// invalidCode is the code for a flag of kind k whose token did not convert.
func invalidCode(k valueKind) ErrorCode {
	switch k {
	case intKind:
		return InvalidInteger
	case doubleKind:
		return InvalidDouble
	default:
		return OK
	}
}

type schemaError struct {
	cause error
}

// newSchemaError reports a schema element whose identifier is not a letter.
func newSchemaError(c rune, schema string) error {
	return schemaError{
		cause: commonerrors.ProgrammerError(errors.Errorf("Bad character: %c in Args format: %s", c, schema)),
	}
}

func (s schemaError) Error() string { return s.cause.Error() }
func (s schemaError) Unwrap() error { return s.cause }
func (s schemaError) Cause() error  { return s.cause }
func (s schemaError) Is(err error) bool {
	_, ok := err.(schemaError)
	return ok
}

// IsSchemaError is true for errors returned by Parse when the schema
// string itself is malformed.
func IsSchemaError(err error) bool {
	var s schemaError
	return errors.Is(err, s)
}
