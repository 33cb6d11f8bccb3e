package dsl

import (
	"fmt"

	"github.com/ByLCY/vellum/binding"
	"github.com/ByLCY/vellum/doc"
)

// Build compiles a parsed document into a Doc annotated with style-tag
// strings. Text content is interpolated against data via the binding
// package; pass nil to leave placeholders untouched.
func Build(d *Document, data any) (doc.Doc[string], error) {
	if d == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return buildNodes(d.Nodes, data)
}

// buildNodes concatenates a node sequence the way adjacent combinator
// calls would.
func buildNodes(nodes []*Node, data any) (doc.Doc[string], error) {
	ds, err := buildEach(nodes, data)
	if err != nil {
		return nil, err
	}
	return doc.HCat(ds...), nil
}

func buildEach(nodes []*Node, data any) ([]doc.Doc[string], error) {
	ds := make([]doc.Doc[string], 0, len(nodes))
	for _, n := range nodes {
		d, err := buildNode(n, data)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func buildNode(n *Node, data any) (doc.Doc[string], error) {
	switch n.Name {
	// Leaves.
	case "line":
		return leaf(n, doc.Line[string]())
	case "linebreak":
		return leaf(n, doc.LineBreak[string]())
	case "softline":
		return leaf(n, doc.SoftLine[string]())
	case "softlinebreak":
		return leaf(n, doc.SoftLineBreak[string]())
	case "hardline":
		return leaf(n, doc.HardLine[string]())
	case "space":
		return leaf(n, doc.Char[string](' '))

	// String nodes.
	case "text":
		s, err := stringArg(n, data)
		if err != nil {
			return nil, err
		}
		return doc.Text[string](s), nil
	case "char":
		s, err := stringArg(n, data)
		if err != nil {
			return nil, err
		}
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%s: char needs exactly one character, got %q", n.Pos, s)
		}
		return doc.Char[string](runes[0]), nil
	case "reflow":
		s, err := stringArg(n, data)
		if err != nil {
			return nil, err
		}
		return doc.Reflow[string](s), nil

	// Block combinators over the children as a list.
	case "hsep", "vsep", "sep", "hcat", "vcat", "cat", "fillsep", "fillcat", "list", "tupled":
		children, err := buildEach(n.Block, data)
		if err != nil {
			return nil, err
		}
		switch n.Name {
		case "hsep":
			return doc.HSep(children...), nil
		case "vsep":
			return doc.VSep(children...), nil
		case "sep":
			return doc.Sep(children...), nil
		case "hcat":
			return doc.HCat(children...), nil
		case "vcat":
			return doc.VCat(children...), nil
		case "cat":
			return doc.Cat(children...), nil
		case "fillsep":
			return doc.FillSep(children...), nil
		case "fillcat":
			return doc.FillCat(children...), nil
		case "list":
			return doc.List(children...), nil
		default:
			return doc.Tupled(children...), nil
		}

	// Block combinators over the children as one document.
	case "group":
		inner, err := buildNodes(n.Block, data)
		if err != nil {
			return nil, err
		}
		return doc.Group(inner), nil
	case "align":
		inner, err := buildNodes(n.Block, data)
		if err != nil {
			return nil, err
		}
		return doc.Align(inner), nil
	case "parens", "brackets", "braces":
		inner, err := buildNodes(n.Block, data)
		if err != nil {
			return nil, err
		}
		switch n.Name {
		case "parens":
			return doc.Parens(inner), nil
		case "brackets":
			return doc.Brackets(inner), nil
		default:
			return doc.Braces(inner), nil
		}

	// Parameterised blocks.
	case "nest", "hang", "indent":
		if n.Number == nil {
			return nil, fmt.Errorf("%s: %s needs a numeric indent", n.Pos, n.Name)
		}
		inner, err := buildNodes(n.Block, data)
		if err != nil {
			return nil, err
		}
		switch n.Name {
		case "nest":
			return doc.Nest(*n.Number, inner), nil
		case "hang":
			return doc.Hang(*n.Number, inner), nil
		default:
			return doc.Indent(*n.Number, inner), nil
		}
	case "annotate":
		if n.String == nil {
			return nil, fmt.Errorf("%s: annotate needs a style tag", n.Pos)
		}
		inner, err := buildNodes(n.Block, data)
		if err != nil {
			return nil, err
		}
		return doc.Annotate(string(*n.String), inner), nil

	default:
		return nil, fmt.Errorf("%s: unknown node %q", n.Pos, n.Name)
	}
}

// leaf rejects stray arguments or blocks on argument-less nodes.
func leaf(n *Node, d doc.Doc[string]) (doc.Doc[string], error) {
	if n.Number != nil || n.String != nil || len(n.Block) > 0 {
		return nil, fmt.Errorf("%s: %s takes no arguments", n.Pos, n.Name)
	}
	return d, nil
}

func stringArg(n *Node, data any) (string, error) {
	if n.String == nil {
		return "", fmt.Errorf("%s: %s needs a string argument", n.Pos, n.Name)
	}
	return binding.Expand(string(*n.String), data), nil
}
