package logic

import "strings"

// Default parser limits.
const (
	DefaultMaxDepth  = 256
	DefaultMaxLength = 4096
)

// Option configures Compile and Parse.
type Option func(*options)

type options struct {
	maxDepth  int
	maxLength int
}

// WithMaxDepth limits how deeply parentheses and negations may nest.
// Values <= 0 keep the default.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithMaxLength limits the byte length of the normalized input.
// Values <= 0 keep the default.
func WithMaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth, maxLength: DefaultMaxLength}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// binaryLevels lists the binary operators from weakest to strongest.
var binaryLevels = []struct {
	token string
	kind  Kind
}{
	{"<->", KindIff},
	{"->", KindImplies},
	{"|", KindOr},
	{"&", KindAnd},
}

// parser is a recursive-descent parser over a normalized string.
// One parser serves one Compile call.
type parser struct {
	src      string
	pos      int
	depth    int
	maxDepth int
}

// Parse normalizes text and compiles it.
func Parse(text string, opts ...Option) (*Expr, error) {
	return Compile(Normalize(text), opts...)
}

// Compile parses a normalized string into an expression tree.
//
// The whole input must be consumed: leftover symbols after a complete
// expression are reported as ErrCodeTrailingInput, or ErrCodeInvalidToken
// when the leftover character cannot start any token.
// All errors are *ParseError.
func Compile(src string, opts ...Option) (*Expr, error) {
	o := buildOptions(opts)
	if len(src) > o.maxLength {
		return nil, errInputTooLong(len(src), o.maxLength)
	}

	p := &parser{src: src, maxDepth: o.maxDepth}
	e, err := p.parseLevel(0)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		if !isTokenStart(p.src[p.pos]) {
			return nil, errInvalidToken(p.src, p.pos)
		}
		return nil, errTrailingInput(p.src, p.pos)
	}
	return e, nil
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.src)
}

func (p *parser) match(tok string) bool {
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

// parseLevel parses operand (op operand)* for binaryLevels[level],
// folding each new right operand into the tree built so far.
func (p *parser) parseLevel(level int) (*Expr, error) {
	if level == len(binaryLevels) {
		return p.parseNot()
	}

	op := binaryLevels[level]
	left, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for p.match(op.token) {
		right, err := p.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		left = binary(op.kind, left, right)
	}
	return left, nil
}

func (p *parser) parseNot() (*Expr, error) {
	start := p.pos
	if !p.match("!") {
		return p.parsePrimary()
	}
	if err := p.enter(start); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Not(operand), nil
}

func (p *parser) parsePrimary() (*Expr, error) {
	start := p.pos
	if p.match("(") {
		if err := p.enter(start); err != nil {
			return nil, err
		}
		defer p.leave()

		inner, err := p.parseLevel(0)
		if err != nil {
			return nil, err
		}
		if !p.match(")") {
			return nil, errUnmatchedParen(p.src, p.pos)
		}
		return inner, nil
	}

	if p.atEnd() {
		return nil, errUnexpectedEnd(p.pos)
	}

	if c := p.src[p.pos]; isVariable(c) {
		p.pos++
		return Var(string(c)), nil
	}
	if p.match("true") {
		return Const(true), nil
	}
	if p.match("false") {
		return Const(false), nil
	}
	return nil, errInvalidToken(p.src, p.pos)
}

func (p *parser) enter(pos int) error {
	p.depth++
	if p.depth > p.maxDepth {
		return errNestingTooDeep(p.src, pos, p.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// isVariable reports whether c names one of the four variables.
func isVariable(c byte) bool {
	return c >= 'a' && c <= 'd'
}

// IsVariableName reports whether name is one of the variables a-d.
func IsVariableName(name string) bool {
	return len(name) == 1 && isVariable(name[0])
}

// isTokenStart reports whether c can begin some token of the grammar.
func isTokenStart(c byte) bool {
	switch c {
	case '(', ')', '!', '&', '|', '-', '<', 't', 'f':
		return true
	}
	return isVariable(c)
}
