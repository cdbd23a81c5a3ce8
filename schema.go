package nargs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option adjusts how Parse compiles the schema and scans arguments.
type Option func(*options)

type options struct {
	marker       rune
	allowDoubles bool
}

func defaultOptions() options {
	return options{
		marker: '-',
	}
}

// WithMarker replaces '-' as the character that introduces a flag
// cluster.
func WithMarker(marker rune) Option {
	return func(o *options) {
		o.marker = marker
	}
}

// AllowDoubles enables the "##" schema tag for floating point flags.
// Without it "##" is an unrecognized tag like any other.
func AllowDoubles() Option {
	return func(o *options) {
		o.allowDoubles = true
	}
}

// compileSchema turns "a,b*,c#" into a marshaler per letter. Elements
// whose tag is not recognized register nothing. A repeated letter
// replaces the earlier marshaler.
func compileSchema(schema string, o options) (map[rune]*marshaler, error) {
	marshalers := make(map[rune]*marshaler)
	for _, element := range strings.Split(schema, ",") {
		element = strings.TrimSpace(element)
		if element == "" {
			continue
		}
		id, size := utf8.DecodeRuneInString(element)
		if !unicode.IsLetter(id) {
			return nil, newSchemaError(id, schema)
		}
		kind, ok := o.tagKind(element[size:])
		if !ok {
			debugf("schema element %q has unknown tag, ignored", element)
			continue
		}
		debugf("schema element %c is %s", id, kind)
		marshalers[id] = newMarshaler(kind)
	}
	return marshalers, nil
}

func (o options) tagKind(tail string) (valueKind, bool) {
	switch tail {
	case "":
		return boolKind, true
	case "*":
		return stringKind, true
	case "#":
		return intKind, true
	case "##":
		if o.allowDoubles {
			return doubleKind, true
		}
	}
	return 0, false
}
