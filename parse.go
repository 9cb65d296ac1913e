// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue

import (
	"errors"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go4.org/mem"
)

// A Parser parses JSON text into values. The zero value is ready for use and
// applies the default settings. A Parser holds only configuration, so once
// configured it is safe for concurrent use by multiple goroutines.
type Parser struct {
	maxDepth  int  // 0 means DefaultMaxDepth
	container bool // require an object or array at the top level
	logger    log.Logger
}

// NewParser constructs a new Parser with default settings.
func NewParser() *Parser { return new(Parser) }

// MaxDepth configures the nesting depth at which p rejects its input with
// ErrDepth. A value n ≤ 0 restores DefaultMaxDepth.
func (p *Parser) MaxDepth(n int) { p.maxDepth = max(n, 0) }

// RequireContainer configures p to require (true) or not require (false) that
// the top-level value of the input is an object or array.
func (p *Parser) RequireContainer(ok bool) { p.container = ok }

// SetLogger configures p to log parse failures reported by TryParse to
// logger, at debug level. A nil logger disables logging.
func (p *Parser) SetLogger(logger log.Logger) { p.logger = logger }

// Parse parses input as a single JSON value, optionally surrounded by
// whitespace. In case of error, the returned error has concrete type
// [*SyntaxError] and no value is returned.
func (p *Parser) Parse(input string) (Value, error) { return p.parse(mem.S(input)) }

// ParseBytes parses input as a single JSON value. It behaves as Parse.
func (p *Parser) ParseBytes(input []byte) (Value, error) { return p.parse(mem.B(input)) }

// TryParse parses input as a single JSON value, and reports whether parsing
// succeeded. On failure it returns nil, false.
func (p *Parser) TryParse(input string) (Value, bool) {
	v, err := p.Parse(input)
	if err != nil {
		p.logFailure(err)
		return nil, false
	}
	return v, true
}

func (p *Parser) parse(input mem.RO) (Value, error) {
	s := &scanner{input: input, maxDepth: p.depthLimit()}

	start := s.skipSpace(0)
	if start == input.Len() {
		return nil, s.failf(start, ErrEmpty, "empty input")
	}
	if p.container {
		if ch := input.At(start); ch != '{' && ch != '[' {
			return nil, s.failf(start, ErrUnexpected, "top-level value must be an object or array")
		}
	}

	v, n, err := s.value(start, 0)
	if err != nil {
		return nil, err
	}
	if end := s.skipSpace(start + n); end < input.Len() {
		return nil, s.failf(end, ErrTrailing, "unexpected %q after top-level value", s.charAt(end))
	}
	return v, nil
}

func (p *Parser) depthLimit() int {
	if p.maxDepth == 0 {
		return DefaultMaxDepth
	}
	return p.maxDepth
}

func (p *Parser) logFailure(err error) {
	if p.logger == nil {
		return
	}
	var serr *SyntaxError
	if errors.As(err, &serr) {
		level.Debug(p.logger).Log("msg", "parse failed",
			"kind", serr.Kind.String(), "offset", serr.Offset, "err", err)
	} else {
		level.Debug(p.logger).Log("msg", "parse failed", "err", err)
	}
}

var defaultParser Parser

// Parse parses input as a single JSON value using the default settings.
// See [Parser.Parse].
func Parse(input string) (Value, error) { return defaultParser.Parse(input) }

// ParseBytes parses input as a single JSON value using the default settings.
// See [Parser.ParseBytes].
func ParseBytes(input []byte) (Value, error) { return defaultParser.ParseBytes(input) }

// TryParse parses input as a single JSON value using the default settings,
// and reports whether parsing succeeded.
func TryParse(input string) (Value, bool) { return defaultParser.TryParse(input) }

// MustParse parses input as a single JSON value using the default settings,
// and panics if parsing fails. It is intended for use in initializing
// variables from constant text.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}
