package deepexn

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type sexpParser struct {
	src string
	pos int
}

// ParseSexp reads a single structured description in machine or human form.
// Line comments start with ';'.
func ParseSexp(text string) (Sexp, error) {
	p := &sexpParser{src: text}
	p.skipSpace()
	if p.eof() {
		return nil, p.fail("empty input")
	}
	s, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.fail("trailing input after expression")
	}
	return s, nil
}

func (p *sexpParser) eof() bool { return p.pos >= len(p.src) }

func (p *sexpParser) fail(reason string) error {
	return bareRaiser.ofn("sexp parse error", "offset", p.pos, "reason", reason)
}

func (p *sexpParser) skipSpace() {
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		switch {
		case r == ';':
			for !p.eof() && p.src[p.pos] != '\n' {
				p.pos++
			}
		case unicode.IsSpace(r):
			p.pos += size
		default:
			return
		}
	}
}

func (p *sexpParser) parse() (Sexp, error) {
	switch p.src[p.pos] {
	case '(':
		return p.parseList()
	case ')':
		return nil, p.fail("unexpected ')'")
	case '"':
		return p.parseQuoted()
	}
	return p.parseBare(), nil
}

func (p *sexpParser) parseList() (Sexp, error) {
	p.pos++
	list := List{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.fail("unclosed '('")
		}
		if p.src[p.pos] == ')' {
			p.pos++
			return list, nil
		}
		e, err := p.parse()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
}

func (p *sexpParser) parseQuoted() (Sexp, error) {
	start := p.pos
	p.pos++
	for !p.eof() {
		switch p.src[p.pos] {
		case '\\':
			p.pos += 2
			continue
		case '"':
			p.pos++
			s, err := strconv.Unquote(p.src[start:p.pos])
			if err != nil {
				p.pos = start
				return nil, p.fail("invalid quoted atom")
			}
			return Atom(s), nil
		}
		p.pos++
	}
	p.pos = start
	return nil, p.fail("unterminated quoted atom")
}

func (p *sexpParser) parseBare() Sexp {
	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.src[p.pos:])
		if isDelimiter(r) {
			break
		}
		p.pos += size
	}
	return Atom(p.src[start:p.pos])
}
