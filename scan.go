package nargs

import (
	"strings"
	"unicode/utf8"
)

// scanResult is the bookkeeping produced by one pass over argv.
type scanResult struct {
	found      map[rune]struct{}
	unexpected map[rune]struct{}
	valid      bool
	errorCode  ErrorCode
	errorArg   rune
}

// scanner walks argv once, feeding tokens to the marshalers.
type scanner struct {
	argv       []string
	marshalers map[rune]*marshaler
	marker     rune
	current    int
	scanResult
}

// scan visits every flag cluster in argv. Unknown letters are
// collected and scanning continues. A missing or unconvertible value
// ends the scan at that point.
func scan(argv []string, marshalers map[rune]*marshaler, marker rune) scanResult {
	s := &scanner{
		argv:       argv,
		marshalers: marshalers,
		marker:     marker,
		scanResult: scanResult{
			found:      make(map[rune]struct{}),
			unexpected: make(map[rune]struct{}),
			valid:      true,
		},
	}
	for s.current = 0; s.current < len(s.argv); s.current++ {
		arg := s.argv[s.current]
		if !strings.HasPrefix(arg, string(s.marker)) {
			debugf("at %d, %q is not a flag cluster, ignored", s.current, arg)
			continue
		}
		if !s.cluster(arg[utf8.RuneLen(s.marker):]) {
			debugf("at %d, scan stopped: %s for -%c", s.current, s.errorCode, s.errorArg)
			break
		}
	}
	return s.scanResult
}

// cluster handles each letter of one flag cluster. It returns false
// when the whole scan must stop.
func (s *scanner) cluster(letters string) bool {
	for len(letters) > 0 {
		r, size := utf8.DecodeRuneInString(letters)
		letters = letters[size:]
		m, ok := s.marshalers[r]
		if !ok {
			debugf("at %d, -%c unexpected", s.current, r)
			s.unexpected[r] = struct{}{}
			s.valid = false
			continue
		}
		if !s.element(r, m) {
			return false
		}
		s.found[r] = struct{}{}
	}
	return true
}

func (s *scanner) element(r rune, m *marshaler) bool {
	if !m.kind.takesValue() {
		_ = m.set("")
		return true
	}
	s.current++
	if s.current >= len(s.argv) {
		return s.fail(r, missingCode(m.kind))
	}
	if err := m.set(s.argv[s.current]); err != nil {
		debugf("at %d, -%c: %s", s.current, r, err)
		return s.fail(r, invalidCode(m.kind))
	}
	return true
}

func (s *scanner) fail(r rune, code ErrorCode) bool {
	s.valid = false
	s.errorCode = code
	s.errorArg = r
	return false
}
