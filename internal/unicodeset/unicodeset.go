// Package unicodeset parses the UnicodeSet patterns used by filter rules,
// e.g. `[a-z]`, `[^[:Latin:][0-9]]`, `[\p{Lu}&[A-Z]]`, into a
// character predicate backed by a unicode.RangeTable.
//
// Supported syntax: literal characters and ranges, backslash escapes
// (\uXXXX, \UXXXXXXXX, \x{h...}), quoted literals, negation with a leading
// `^`, nested sets (union), `&` intersection and `-` difference between set
// operands, and the properties `[:Name:]`, `[:^Name:]`, `\p{Name}` and
// `\P{Name}` where Name is a script, a general category, a binary property,
// `Any` or `Assigned`. Multi-character strings (`{ab}`) are not supported.
package unicodeset

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/solatis/translit/internal/rules/syntax"
	"golang.org/x/text/unicode/rangetable"
)

// ErrSyntax is returned for patterns that are not valid UnicodeSets.
var ErrSyntax = errors.New("invalid UnicodeSet pattern")

// ErrUnknownProperty is returned for property names that cannot be resolved.
var ErrUnknownProperty = errors.New("unknown Unicode property")

// Set is a parsed UnicodeSet. The zero value is not usable; use Parse.
type Set struct {
	table   *unicode.RangeTable
	negated bool
	pattern string
}

// Parse reads a complete UnicodeSet pattern. Surrounding whitespace is
// ignored; anything after the closing bracket is an error.
func Parse(pattern string) (*Set, error) {
	p := &parser{src: []rune(strings.TrimSpace(pattern))}
	v, err := p.parseSet()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q after set", string(p.src[p.pos:]))
	}
	return &Set{table: v.table, negated: v.neg, pattern: string(p.src)}, nil
}

// MustParse is like Parse but panics on error. Intended for package-level
// variables and tests.
func MustParse(pattern string) *Set {
	s, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Contains reports whether r is a member of the set.
func (s *Set) Contains(r rune) bool {
	return unicode.Is(s.table, r) != s.negated
}

// ContainsAll reports whether every rune of text is a member of the set.
func (s *Set) ContainsAll(text string) bool {
	for _, r := range text {
		if !s.Contains(r) {
			return false
		}
	}
	return true
}

// Table returns the positive range table; when Negated is true the set is
// its complement.
func (s *Set) Table() *unicode.RangeTable {
	return s.table
}

// Negated reports whether the set is the complement of Table.
func (s *Set) Negated() bool {
	return s.negated
}

// String returns the pattern the set was parsed from.
func (s *Set) String() string {
	return s.pattern
}

// value is an intermediate set: the members of table, or their complement.
type value struct {
	table *unicode.RangeTable
	neg   bool
}

func empty() value {
	return value{table: rangetable.New()}
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(string(p.src[p.pos:]), s)
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

// parseSet reads `[ ... ]` or a `[:prop:]` set starting at the current position.
func (p *parser) parseSet() (value, error) {
	p.skipSpace()
	if p.hasPrefix("[:") {
		return p.parsePosixProperty()
	}
	if p.peek() != '[' {
		return value{}, p.errorf("expected '['")
	}
	p.pos++
	negate := false
	p.skipSpace()
	if p.peek() == '^' {
		negate = true
		p.pos++
	}

	acc := empty()
	var pending []*unicode.RangeTable
	flush := func() {
		if len(pending) > 0 {
			acc = union(acc, value{table: rangetable.Merge(pending...)})
			pending = nil
		}
	}
	var op rune
	lastSet := false
	for {
		p.skipSpace()
		if p.eof() {
			return value{}, p.errorf("unterminated set")
		}
		c := p.peek()
		switch {
		case c == ']':
			p.pos++
			if op != 0 {
				// a trailing operator is a literal
				pending = append(pending, single(op))
			}
			flush()
			if negate {
				acc.neg = !acc.neg
			}
			return acc, nil
		case c == '[' || p.hasPrefix(`\p`) || p.hasPrefix(`\P`):
			var operand value
			var err error
			if c == '[' {
				operand, err = p.parseSet()
			} else {
				operand, err = p.parseEscapedProperty()
			}
			if err != nil {
				return value{}, err
			}
			flush()
			switch op {
			case '&':
				acc = intersect(acc, operand)
			case '-':
				acc = intersect(acc, complement(operand))
			default:
				acc = union(acc, operand)
			}
			op = 0
			lastSet = true
		case (c == '&' || c == '-') && op == 0 && lastSet:
			p.pos++
			op = c
		case c == '{':
			return value{}, p.errorf("strings in sets are not supported")
		default:
			if op != 0 {
				return value{}, p.errorf("operator %q must be followed by a set", string(op))
			}
			lo, err := p.parseChar()
			if err != nil {
				return value{}, err
			}
			hi := lo
			p.skipSpace()
			if p.peek() == '-' {
				save := p.pos
				p.pos++
				p.skipSpace()
				if n := p.peek(); n != ']' && n != '[' && !p.eof() {
					if hi, err = p.parseChar(); err != nil {
						return value{}, err
					}
					if hi < lo {
						return value{}, p.errorf("reversed range %U-%U", lo, hi)
					}
				} else {
					p.pos = save
				}
			}
			pending = append(pending, span(lo, hi))
			lastSet = false
		}
	}
}

// parseChar reads one literal character, an escape or a quoted literal.
// A quoted literal longer than one character is an error.
func (p *parser) parseChar() (rune, error) {
	c := p.peek()
	switch c {
	case '\\':
		p.pos++
		rest := string(p.src[p.pos:])
		r, n := syntax.DecodeEscape(rest)
		p.pos += len([]rune(rest[:n]))
		return r, nil
	case '\'':
		end := p.pos + 1
		for end < len(p.src) && p.src[end] != '\'' {
			end++
		}
		if end >= len(p.src) {
			return 0, p.errorf("unterminated quote")
		}
		lit := p.src[p.pos+1 : end]
		p.pos = end + 1
		switch len(lit) {
		case 0:
			return '\'', nil
		case 1:
			return lit[0], nil
		}
		return 0, p.errorf("strings in sets are not supported")
	}
	p.pos++
	return c, nil
}

// parsePosixProperty reads `[:Name:]` or `[:^Name:]`.
func (p *parser) parsePosixProperty() (value, error) {
	p.pos += 2
	rest := string(p.src[p.pos:])
	end := strings.Index(rest, ":]")
	if end < 0 {
		return value{}, p.errorf("unterminated property")
	}
	name := rest[:end]
	p.pos += len([]rune(name)) + 2
	neg := false
	if strings.HasPrefix(name, "^") {
		neg = true
		name = name[1:]
	}
	t, err := lookupProperty(name)
	if err != nil {
		return value{}, err
	}
	return value{table: t, neg: neg}, nil
}

// parseEscapedProperty reads `\p{Name}` or `\P{Name}`.
func (p *parser) parseEscapedProperty() (value, error) {
	neg := p.src[p.pos+1] == 'P'
	p.pos += 2
	if p.peek() != '{' {
		return value{}, p.errorf("expected '{' after property escape")
	}
	rest := string(p.src[p.pos+1:])
	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return value{}, p.errorf("unterminated property")
	}
	name := rest[:end]
	p.pos += 1 + len([]rune(name)) + 1
	t, err := lookupProperty(name)
	if err != nil {
		return value{}, err
	}
	return value{table: t, neg: neg}, nil
}
