// Package cssmedia implements a bounded subset of the CSS Media
// Queries evaluator: boolean combinations of width/height feature
// tests over csstok's token stream. It is not a general CSS property
// resolver — only the feature set in Features is understood.
package cssmedia

import (
	"errors"
	"fmt"

	"github.com/kauri-engine/kauri/csstok"
)

// ErrUnsupportedFeature is returned when a media feature name other
// than "width" or "height" is referenced.
var ErrUnsupportedFeature = errors.New("cssmedia: unsupported media feature")

// Features is the environment a Query is evaluated against.
type Features struct {
	Width  float64
	Height float64
}

// Query is a parsed media query: a boolean expression tree over
// feature comparisons, https://www.w3.org/TR/mediaqueries-4/#mq-syntax.
type Query interface {
	Eval(f Features) bool
}

type notQuery struct{ inner Query }

func (q notQuery) Eval(f Features) bool { return !q.inner.Eval(f) }

type andQuery struct{ left, right Query }

func (q andQuery) Eval(f Features) bool { return q.left.Eval(f) && q.right.Eval(f) }

type orQuery struct{ left, right Query }

func (q orQuery) Eval(f Features) bool { return q.left.Eval(f) || q.right.Eval(f) }

// Operator is a feature comparison's relational operator.
type Operator int

const (
	OpEqual Operator = iota
	OpLessThan
	OpLessEqual
	OpGreaterThan
	OpGreaterEqual
)

type featureQuery struct {
	name string
	op   Operator
	val  float64
}

func (q featureQuery) Eval(f Features) bool {
	var actual float64
	switch q.name {
	case "width":
		actual = f.Width
	case "height":
		actual = f.Height
	default:
		return false
	}
	switch q.op {
	case OpEqual:
		return actual == q.val
	case OpLessThan:
		return actual < q.val
	case OpLessEqual:
		return actual <= q.val
	case OpGreaterThan:
		return actual > q.val
	case OpGreaterEqual:
		return actual >= q.val
	default:
		return false
	}
}

// Parse tokenizes and parses a single media query (without the
// `@media` prelude's comma-separated query-list wrapping, which
// callers handle by splitting on top-level commas before calling
// Parse on each piece).
func Parse(src string) (Query, error) {
	var toks []csstok.Token
	var tokErr error
	tk := csstok.New([]byte(src), func(t csstok.Token) {
		if t.Kind != csstok.Whitespace {
			toks = append(toks, t)
		}
	}, func(e csstok.Error, pos csstok.Position) {
		tokErr = fmt.Errorf("cssmedia: tokenize error %v at %v", e, pos)
	})
	tk.Run()
	if tokErr != nil {
		return nil, tokErr
	}

	p := &parser{toks: toks}
	q, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, fmt.Errorf("cssmedia: unexpected token after query at position %d", p.pos)
	}
	return q, nil
}

type parser struct {
	toks []csstok.Token
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() (csstok.Token, bool) {
	if p.atEnd() {
		return csstok.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (csstok.Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parseOr parses a chain of `and`-bound terms joined by `or`, matching
// the CSS media-query grammar's <media-and> | <media-or> production
// (mixed and/or at the same nesting level is a syntax error in the
// real grammar; this evaluator accepts it, with `and` binding tighter
// than `or`, and folds each chain left to right).
func (p *parser) parseOr() (Query, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		if !p.consumeIdent("or") {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = orQuery{left, right}
	}
}

func (p *parser) parseAnd() (Query, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if !p.consumeIdent("and") {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = andQuery{left, right}
	}
}

func (p *parser) parseUnary() (Query, error) {
	if p.consumeIdent("not") {
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return notQuery{inner}, nil
	}
	return p.parseFeatureOrGroup()
}

func (p *parser) parseFeatureOrGroup() (Query, error) {
	t, ok := p.next()
	if !ok {
		return nil, errors.New("cssmedia: unexpected end of query")
	}
	if t.Kind == csstok.LeftParen {
		// Either a parenthesized sub-expression (group) or a feature
		// test: disambiguate by looking for a bare ident followed by
		// ':' or a comparison delimiter, vs a nested and/or/not.
		if isFeatureStart(p.toks[p.pos:]) {
			q, err := p.parseFeature()
			if err != nil {
				return nil, err
			}
			return q, nil
		}
		q, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if err := p.expectRightParen(); err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, fmt.Errorf("cssmedia: expected '(' at position %d", p.pos-1)
}

// isFeatureStart reports whether the tokens immediately inside an
// already-consumed '(' look like `ident : ...` or `ident <op> ...`
// rather than a nested boolean group starting with `not`/`(`.
func isFeatureStart(rest []csstok.Token) bool {
	if len(rest) == 0 || rest[0].Kind != csstok.Ident {
		return false
	}
	if rest[0].Value == "not" {
		return false
	}
	return true
}

func (p *parser) parseFeature() (Query, error) {
	nameTok, ok := p.next()
	if !ok || nameTok.Kind != csstok.Ident {
		return nil, errors.New("cssmedia: expected media feature name")
	}
	op := OpEqual
	opTok, ok := p.next()
	if !ok {
		return nil, errors.New("cssmedia: expected ':' or comparison operator")
	}
	switch {
	case opTok.Kind == csstok.Colon:
		op = OpEqual
	case opTok.Kind == csstok.Delim && opTok.DelimRune == '<':
		op = OpLessThan
		if p.consumeDelim('=') {
			op = OpLessEqual
		}
	case opTok.Kind == csstok.Delim && opTok.DelimRune == '>':
		op = OpGreaterThan
		if p.consumeDelim('=') {
			op = OpGreaterEqual
		}
	case opTok.Kind == csstok.Delim && opTok.DelimRune == '=':
		op = OpEqual
	default:
		return nil, fmt.Errorf("cssmedia: invalid feature operator at position %d", p.pos-1)
	}

	valTok, ok := p.next()
	if !ok {
		return nil, errors.New("cssmedia: expected feature value")
	}
	var val float64
	switch valTok.Kind {
	case csstok.Number:
		val = valTok.NumberValue
	case csstok.Dimension:
		val = valTok.NumberValue
	default:
		return nil, fmt.Errorf("cssmedia: expected numeric feature value at position %d", p.pos-1)
	}

	if err := p.expectRightParen(); err != nil {
		return nil, err
	}

	name := nameTok.Value
	switch name {
	case "width", "height":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFeature, name)
	}
	return featureQuery{name: name, op: op, val: val}, nil
}

func (p *parser) expectRightParen() error {
	t, ok := p.next()
	if !ok || t.Kind != csstok.RightParen {
		return fmt.Errorf("cssmedia: expected ')' at position %d", p.pos-1)
	}
	return nil
}

func (p *parser) consumeIdent(name string) bool {
	t, ok := p.peek()
	if !ok || t.Kind != csstok.Ident || t.Value != name {
		return false
	}
	p.pos++
	return true
}

func (p *parser) consumeDelim(r rune) bool {
	t, ok := p.peek()
	if !ok || t.Kind != csstok.Delim || t.DelimRune != r {
		return false
	}
	p.pos++
	return true
}
