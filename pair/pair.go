// Package pair turns a raw input line into an ordered list of parent→child
// symbol pairs.
//
// Grammar (bit-exact):
//
//	line  := token { ' ' token }
//	token := '(' symbol ',' symbol ')'
//	symbol:= 'A'..'Z'
//
// The line must be non-empty and must neither start nor end with a space.
// Tokens are separated by exactly one space; an empty token between two
// spaces is malformed. Every violation is fatal and reported as an error
// wrapping report.ErrInvalidInput.
//
// Complexity: Split and ExtractAll are O(n) in the line length; Extract is O(1).
package pair

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/pairtree/report"
)

const (
	// Separator delimits tokens on an input line.
	Separator = " "

	// TokenLen is the exact length of a well-formed token, e.g. "(A,B)".
	TokenLen = 5

	// parentPos and childPos are the fixed symbol offsets inside a token.
	parentPos = 1
	childPos  = 3
)

// tokenPattern matches exactly one well-formed token.
var tokenPattern = regexp.MustCompile(`^\([A-Z],[A-Z]\)$`)

// Symbol identifies a node. Symbols compare by code point.
type Symbol rune

// String renders the symbol as its single character.
func (s Symbol) String() string {
	return string(rune(s))
}

// Pair is one directed parent→child relationship taken from a token.
type Pair struct {
	Parent Symbol
	Child  Symbol
}

// String renders p back into token form, e.g. "(A,B)".
func (p Pair) String() string {
	return "(" + p.Parent.String() + "," + p.Child.String() + ")"
}

// Split validates the overall line shape and splits it into raw tokens.
// Tokens themselves are not validated here.
func Split(input string) ([]string, error) {
	switch {
	case input == "":
		return nil, report.Invalidf("empty input")
	case strings.HasPrefix(input, Separator):
		return nil, report.Invalidf("input starts with a separator")
	case strings.HasSuffix(input, Separator):
		return nil, report.Invalidf("input ends with a separator")
	}

	return strings.Split(input, Separator), nil
}

// Extract validates one token and returns the pair it encodes.
func Extract(token string) (Pair, error) {
	if strings.TrimSpace(token) == "" {
		return Pair{}, report.Invalidf("empty token")
	}
	if len(token) != TokenLen || !tokenPattern.MatchString(token) {
		return Pair{}, report.Invalidf("malformed token %q", token)
	}

	return Pair{
		Parent: Symbol(token[parentPos]),
		Child:  Symbol(token[childPos]),
	}, nil
}

// ExtractAll splits input and extracts every token in input order.
// It stops at the first malformed token; no partial result is returned.
func ExtractAll(input string) ([]Pair, error) {
	tokens, err := Split(input)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(tokens))
	for i, tok := range tokens {
		p, err := Extract(tok)
		if err != nil {
			return nil, fmt.Errorf("pair: token %d: %w", i, err)
		}
		pairs = append(pairs, p)
	}

	return pairs, nil
}
