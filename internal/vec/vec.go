// Package vec implements a small parser for textual adder test vectors.
//
// A vector is a comma separated list of name=value assignments:
//
//	a=3, b=0b0010, cin=0, sum=5, cout=0
//
// Names are Go-like identifiers. Values are unsigned integers in any
// notation accepted by strconv.ParseUint with base 0, so plain decimal
// as well as 0b, 0o and 0x prefixed literals work.
//
package vec

import (
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

// An Assign is a single name=value assignment. Pos is the rune position
// of the name in the input string.
//
type Assign struct {
	Name  string
	Value uint64
	Pos   int
}

const eof rune = -1

type scanner struct {
	in  []rune
	pos int
}

func (s *scanner) next() rune {
	if s.pos >= len(s.in) {
		return eof
	}
	r := s.in[s.pos]
	s.pos++
	return r
}

func (s *scanner) backup() { s.pos-- }

func (s *scanner) skipSpace() {
	for s.pos < len(s.in) && unicode.IsSpace(s.in[s.pos]) {
		s.pos++
	}
}

// ident scans an identifier and returns it, or "" if the next rune
// cannot start one.
func (s *scanner) ident() string {
	start := s.pos
	r := s.next()
	if r == eof {
		return ""
	}
	if !unicode.IsLetter(r) && r != '_' {
		s.backup()
		return ""
	}
	for {
		r = s.next()
		if r == eof {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			s.backup()
			break
		}
	}
	return string(s.in[start:s.pos])
}

// number scans an integer literal. The whole alphanumeric run is
// returned so that prefixed literals like 0x1f come out in one piece;
// strconv does the actual validation.
func (s *scanner) number() string {
	start := s.pos
	r := s.next()
	if r == eof {
		return ""
	}
	if r < '0' || r > '9' {
		s.backup()
		return ""
	}
	for {
		r = s.next()
		if r == eof {
			break
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			s.backup()
			break
		}
	}
	return string(s.in[start:s.pos])
}

// Parse parses a vector description and returns its assignments in
// input order. An empty or blank input yields a nil slice. Parsing
// stops at the first error, which reports the position of the
// offending token.
//
func Parse(input string) ([]Assign, error) {
	var out []Assign

	s := &scanner{in: []rune(input)}
	s.skipSpace()
	if s.pos == len(s.in) {
		return nil, nil
	}
	for {
		a, err := s.assign(input)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
		s.skipSpace()
		p := s.pos
		r := s.next()
		if r == eof {
			return out, nil
		}
		if r != ',' {
			return nil, parseError(input, p, "expected comma or end of input")
		}
	}
}

func (s *scanner) assign(input string) (Assign, error) {
	s.skipSpace()
	pos := s.pos
	name := s.ident()
	if name == "" {
		return Assign{}, parseError(input, pos, "expected signal name")
	}
	s.skipSpace()
	p := s.pos
	if r := s.next(); r != '=' {
		return Assign{}, parseError(input, p, "expected '=' after signal name")
	}
	s.skipSpace()
	p = s.pos
	lit := s.number()
	if lit == "" {
		return Assign{}, parseError(input, p, "expected integer value")
	}
	v, err := strconv.ParseUint(lit, 0, 64)
	if err != nil {
		return Assign{}, parseError(input, p, "invalid integer "+strconv.Quote(lit))
	}
	return Assign{Name: name, Value: v, Pos: pos}, nil
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
