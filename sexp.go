package deepexn

import (
	"strconv"
	"strings"
	"unicode"
)

// Sexp is a structured description: either an Atom or a List of sub-trees.
type Sexp interface {
	String() string
	isSexp()
}

type Atom string

type List []Sexp

// Sexper is implemented by errors that know their own structured form.
type Sexper interface {
	Sexp() Sexp
}

func (Atom) isSexp() {}
func (List) isSexp() {}

func (a Atom) String() string { return quoteAtom(string(a)) }

func (l List) String() string {
	var b strings.Builder
	writeMach(&b, l)
	return b.String()
}

// Mach renders s on a single line. A nil Sexp renders as the empty list.
func Mach(s Sexp) string {
	var b strings.Builder
	writeMach(&b, s)
	return b.String()
}

// Hum renders s over several lines, keeping short lists on one line.
func Hum(s Sexp) string {
	var b strings.Builder
	writeHum(&b, s, 0)
	return b.String()
}

func Equal(a, b Sexp) bool {
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x == y
	case List:
		return equalList(x, b)
	case nil:
		return equalList(nil, b)
	}
	return false
}

func equalList(x List, b Sexp) bool {
	var y List
	switch v := b.(type) {
	case List:
		y = v
	case nil:
	default:
		return false
	}
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

const humWidth = 72

func writeMach(b *strings.Builder, s Sexp) {
	switch v := s.(type) {
	case Atom:
		b.WriteString(quoteAtom(string(v)))
	case List:
		b.WriteByte('(')
		for i, e := range v {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeMach(b, e)
		}
		b.WriteByte(')')
	default:
		b.WriteString("()")
	}
}

func writeHum(b *strings.Builder, s Sexp, indent int) {
	l, ok := s.(List)
	if !ok || len(l) < 2 || indent+len(Mach(l)) <= humWidth {
		writeMach(b, s)
		return
	}
	pad := strings.Repeat(" ", indent+1)
	b.WriteByte('(')
	writeHum(b, l[0], indent+1)
	for _, e := range l[1:] {
		b.WriteByte('\n')
		b.WriteString(pad)
		writeHum(b, e, indent+1)
	}
	b.WriteByte(')')
}

func quoteAtom(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if isDelimiter(r) || r == '\\' || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '"', ';':
		return true
	}
	return unicode.IsSpace(r)
}
