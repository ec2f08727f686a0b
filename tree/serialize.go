package tree

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/pairtree/pair"
)

const (
	openBracket  = '('
	closeBracket = ')'
)

// Serialize renders the tree under root in canonical form:
// a leaf is "(V)", an inner node is "(V<left><right>)" and a missing child
// renders as nothing. A nil root yields "".
func Serialize(root *Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	_, _ = Walk(root,
		WithOnVisit(func(n *Node, _ int) error {
			sb.WriteByte(openBracket)
			sb.WriteRune(rune(n.Value))
			return nil
		}),
		WithOnExit(func(*Node, int) error {
			sb.WriteByte(closeBracket)
			return nil
		}),
	)

	return sb.String()
}

// Parse rebuilds a node tree from its serialization. Children are assigned
// in textual order: the first nested group becomes Left, the second Right.
// Empty text parses to a nil root.
func Parse(text string) (*Node, error) {
	if text == "" {
		return nil, nil
	}

	p := &parser{src: text}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing text")
	}

	return root, nil
}

// Equal reports whether a and b have the same shape and values.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// parser is a recursive-descent reader over a serialization.
type parser struct {
	src string
	pos int
}

func (p *parser) node() (*Node, error) {
	if !p.accept(openBracket) {
		return nil, p.errorf("expected %q", openBracket)
	}

	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	if size == 0 || r == openBracket || r == closeBracket || r == utf8.RuneError {
		return nil, p.errorf("expected a symbol")
	}
	p.pos += size
	n := &Node{Value: pair.Symbol(r)}

	for !p.accept(closeBracket) {
		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated node %q", n.Value)
		}
		child, err := p.node()
		if err != nil {
			return nil, err
		}
		switch {
		case n.Left == nil:
			n.Left = child
		case n.Right == nil:
			n.Right = child
		default:
			return nil, p.errorf("node %q has more than two children", n.Value)
		}
	}

	return n, nil
}

func (p *parser) accept(b byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == b {
		p.pos++
		return true
	}

	return false
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: offset %d: %s", ErrMalformedSerialization, p.pos, fmt.Sprintf(format, args...))
}
