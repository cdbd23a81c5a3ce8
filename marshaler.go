package nargs

import (
	"strconv"

	"github.com/pkg/errors"
)

type valueKind int

const (
	boolKind valueKind = iota
	stringKind
	intKind
	doubleKind
)

func (k valueKind) String() string {
	switch k {
	case boolKind:
		return "boolean"
	case stringKind:
		return "string"
	case intKind:
		return "integer"
	case doubleKind:
		return "double"
	default:
		return "unknown"
	}
}

// takesValue is true for kinds that consume the token following
// the flag cluster.
func (k valueKind) takesValue() bool {
	return k != boolKind
}

// errInvalidFormat is returned by set when a token cannot be
// converted to the marshaler's type.
var errInvalidFormat = errors.New("invalid format")

// marshaler holds at most one value for a single flag letter.
// Only the field matching kind is ever written.
type marshaler struct {
	kind        valueKind
	boolValue   bool
	stringValue string
	intValue    int
	doubleValue float64
}

func newMarshaler(kind valueKind) *marshaler {
	return &marshaler{kind: kind}
}

// set stores token. Booleans ignore the token: presence is the value.
func (m *marshaler) set(token string) error {
	switch m.kind {
	case boolKind:
		m.boolValue = true
	case stringKind:
		m.stringValue = token
	case intKind:
		i, err := strconv.Atoi(token)
		if err != nil {
			return errors.Wrapf(errInvalidFormat, "integer %q", token)
		}
		m.intValue = i
	case doubleKind:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return errors.Wrapf(errInvalidFormat, "double %q", token)
		}
		m.doubleValue = f
	}
	return nil
}

func (m *marshaler) getBool() bool {
	return m != nil && m.kind == boolKind && m.boolValue
}

func (m *marshaler) getString() string {
	if m == nil || m.kind != stringKind {
		return ""
	}
	return m.stringValue
}

func (m *marshaler) getInt() int {
	if m == nil || m.kind != intKind {
		return 0
	}
	return m.intValue
}

func (m *marshaler) getDouble() float64 {
	if m == nil || m.kind != doubleKind {
		return 0
	}
	return m.doubleValue
}

// text renders the stored value the way it would be typed on a
// command line.
func (m *marshaler) text() string {
	switch m.kind {
	case boolKind:
		return strconv.FormatBool(m.boolValue)
	case stringKind:
		return m.stringValue
	case intKind:
		return strconv.Itoa(m.intValue)
	case doubleKind:
		return strconv.FormatFloat(m.doubleValue, 'g', -1, 64)
	default:
		return ""
	}
}
