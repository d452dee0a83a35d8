package decode

import "strconv"

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOperator
	tokOther
)

func isWhite(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelim(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// next scans the following content-stream token. Numbers are returned with
// their value, operator keywords set p.opName, and everything else (names,
// strings, array/dict delimiters) is reported as tokOther since it carries
// no geometry.
func (p *contentParser) next() (tokenKind, float64, bool) {
	for p.pos < len(p.data) && isWhite(p.data[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.data) {
		return tokOther, 0, false
	}
	b := p.data[p.pos]
	switch {
	case b == '%':
		for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
			p.pos++
		}
		return p.next()
	case b == '(':
		p.skipLiteralString()
		return tokOther, 0, true
	case b == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			p.pos += 2
		} else {
			for p.pos < len(p.data) && p.data[p.pos] != '>' {
				p.pos++
			}
			p.pos++
		}
		return tokOther, 0, true
	case b == '/':
		p.pos++
		for p.pos < len(p.data) && !isWhite(p.data[p.pos]) && !isDelim(p.data[p.pos]) {
			p.pos++
		}
		return tokOther, 0, true
	case isDelim(b):
		p.pos++
		if b == '>' && p.pos < len(p.data) && p.data[p.pos] == '>' {
			p.pos++
		}
		return tokOther, 0, true
	case b == '+' || b == '-' || b == '.' || (b >= '0' && b <= '9'):
		start := p.pos
		p.pos++
		for p.pos < len(p.data) {
			c := p.data[p.pos]
			if c == '.' || (c >= '0' && c <= '9') {
				p.pos++
				continue
			}
			break
		}
		v, err := strconv.ParseFloat(string(p.data[start:p.pos]), 64)
		if err != nil {
			return tokOther, 0, true
		}
		return tokNumber, v, true
	default:
		start := p.pos
		for p.pos < len(p.data) && !isWhite(p.data[p.pos]) && !isDelim(p.data[p.pos]) {
			p.pos++
		}
		p.opName = string(p.data[start:p.pos])
		return tokOperator, 0, true
	}
}

// skipLiteralString advances past a (possibly nested) literal string.
func (p *contentParser) skipLiteralString() {
	depth := 0
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '\\':
			p.pos++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				p.pos++
				return
			}
		}
		p.pos++
	}
}

// skipInlineImage advances past the binary data of a BI ... ID ... EI
// inline image.
func (p *contentParser) skipInlineImage() {
	for p.pos+1 < len(p.data) {
		if p.data[p.pos] == 'E' && p.data[p.pos+1] == 'I' &&
			(p.pos == 0 || isWhite(p.data[p.pos-1])) &&
			(p.pos+2 >= len(p.data) || isWhite(p.data[p.pos+2])) {
			p.pos += 2
			return
		}
		p.pos++
	}
	p.pos = len(p.data)
}
