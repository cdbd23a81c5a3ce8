package nargs

import (
	"fmt"
	"strings"

	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Args is the outcome of parsing one argument vector against one
// schema. It is read-only once Parse returns.
type Args struct {
	schema     string
	marshalers map[rune]*marshaler
	found      map[rune]struct{}
	unexpected []rune
	valid      bool
	errorCode  ErrorCode
	errorArg   rune
}

// Parse compiles schema and scans argv with it. The returned error is
// only for a malformed schema; problems with argv are reported by
// IsValid and ErrorMessage.
//
//	a, err := nargs.Parse("l,p#,d*", []string{"-l", "-p", "8080", "-d", "/tmp"})
func Parse(schema string, argv []string, opts ...Option) (*Args, error) {
	o := defaultOptions()
	for _, f := range opts {
		f(&o)
	}
	a := &Args{
		schema: schema,
		valid:  true,
	}
	if schema == "" && len(argv) == 0 {
		a.marshalers = map[rune]*marshaler{}
		a.found = map[rune]struct{}{}
		return a, nil
	}
	marshalers, err := compileSchema(schema, o)
	if err != nil {
		return nil, err
	}
	result := scan(argv, marshalers, o.marker)
	a.marshalers = marshalers
	a.found = result.found
	a.unexpected = sortedRunes(result.unexpected)
	a.valid = result.valid
	a.errorCode = result.errorCode
	a.errorArg = result.errorArg
	return a, nil
}

// GetBoolean is true only if the letter is a boolean flag that was given.
func (a *Args) GetBoolean(arg rune) bool {
	return a.marshalers[arg].getBool()
}

// GetString returns "" for unset, undeclared, or non-string flags.
func (a *Args) GetString(arg rune) string {
	return a.marshalers[arg].getString()
}

// GetInteger returns 0 for unset, undeclared, or non-integer flags.
func (a *Args) GetInteger(arg rune) int {
	return a.marshalers[arg].getInt()
}

// GetDouble returns 0 for unset, undeclared, or non-double flags.
// Doubles exist only when parsing with AllowDoubles.
func (a *Args) GetDouble(arg rune) float64 {
	return a.marshalers[arg].getDouble()
}

func (a *Args) Has(arg rune) bool {
	_, ok := a.found[arg]
	return ok
}

// Cardinality is the number of distinct flags successfully found.
func (a *Args) Cardinality() int {
	return len(a.found)
}

func (a *Args) IsValid() bool {
	return a.valid
}

func (a *Args) Schema() string {
	return a.schema
}

// Usage is "-[schema]", or "" when the schema is empty.
func (a *Args) Usage() string {
	if a.schema == "" {
		return ""
	}
	return "-[" + a.schema + "]"
}

func (a *Args) ErrorCode() ErrorCode {
	return a.errorCode
}

// ErrorArgument is the flag letter whose value could not be found or
// parsed. It is zero when ErrorCode is OK.
func (a *Args) ErrorArgument() rune {
	return a.errorArg
}

// Unexpected returns the undeclared flag letters, sorted.
func (a *Args) Unexpected() []rune {
	if len(a.unexpected) == 0 {
		return nil
	}
	u := make([]rune, len(a.unexpected))
	copy(u, a.unexpected)
	return u
}

// ErrorMessage describes why the arguments are invalid. Unexpected
// flags take priority over value errors. Calling ErrorMessage on a
// valid result is a programming error.
func (a *Args) ErrorMessage() (string, error) {
	if len(a.unexpected) > 0 {
		return "Argument(s) -" + string(a.unexpected) + " unexpected.", nil
	}
	switch a.errorCode {
	case InvalidInteger:
		return fmt.Sprintf("Could not parse integer parameter for -%c.", a.errorArg), nil
	case MissingInteger:
		return fmt.Sprintf("Could not find integer parameter for -%c.", a.errorArg), nil
	case MissingString:
		return fmt.Sprintf("Could not find string parameter for -%c.", a.errorArg), nil
	case InvalidDouble:
		return fmt.Sprintf("Could not parse double parameter for -%c.", a.errorArg), nil
	case MissingDouble:
		return fmt.Sprintf("Could not find double parameter for -%c.", a.errorArg), nil
	case OK:
		return "", commonerrors.ProgrammerError(errors.New("TILT: Should not get here."))
	default:
		return "", commonerrors.LibraryError(errors.Errorf("internal error: unknown error code %s", a.errorCode))
	}
}

// Err is nil when the arguments are valid and otherwise a usage error
// carrying ErrorMessage.
func (a *Args) Err() error {
	if a.valid {
		return nil
	}
	msg, err := a.ErrorMessage()
	if err != nil {
		return err
	}
	return commonerrors.UsageError(errors.New(msg))
}

// String summarizes the parse for debugging.
func (a *Args) String() string {
	var b strings.Builder
	b.WriteString("nargs")
	b.WriteString(prependSpace(a.Usage()))
	for _, r := range sortedRunes(a.found) {
		fmt.Fprintf(&b, " -%c=%s", r, a.marshalers[r].text())
	}
	if !a.valid {
		b.WriteString(" (invalid)")
	}
	return b.String()
}
