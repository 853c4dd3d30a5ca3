package flexlay

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vanng822/go-premailer/premailer"
	"golang.org/x/net/html"
)

// ParseOptions represents options for parsing HTML.
type ParseOptions struct {
	// Width and Height constrain the root node. This is useful when the
	// size comes from outside the document.
	Width  float64
	Height float64
}

// Parse builds a node tree from an HTML document. Style sheets are inlined
// into style attributes first, then every element under <body> becomes a
// node and its style declarations are applied through the engine's setters.
// The document must contain exactly one root element.
func Parse(input string, opts *ParseOptions) *Node {
	if opts == nil {
		opts = &ParseOptions{}
	}

	inlined := inlineCSS(input)
	z := html.NewTokenizer(strings.NewReader(inlined))
	dummy := NewNode()
	stack := &nodeStack{stack: []*Node{dummy}}
	inBody := false
Loop:
	for {
		tt := z.Next()
		tn, _ := z.TagName()
		switch tt {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				break Loop
			}
			assertFail(fmt.Sprintf("invalid html: %v", z.Err()))
		case html.StartTagToken:
			if string(tn) == "body" {
				inBody = true
				continue
			}
			if !inBody {
				continue
			}
			node := processTag(z)
			parent := stack.peek()
			parent.InsertChild(node, parent.ChildCount())
			stack.push(node)
		case html.SelfClosingTagToken:
			if !inBody {
				continue
			}
			node := processTag(z)
			parent := stack.peek()
			parent.InsertChild(node, parent.ChildCount())
		case html.EndTagToken:
			if string(tn) == "body" {
				inBody = false
				continue
			}
			if !inBody {
				continue
			}
			stack.pop()
		}
	}
	assertCond(dummy.ChildCount() == 1, fmt.Sprintf("invalid html: expected a single root element, got %d", dummy.ChildCount()))

	root := dummy.Child(0)
	dummy.RemoveChild(root)
	if opts.Width != 0 {
		root.SetWidth(opts.Width)
	}
	if opts.Height != 0 {
		root.SetHeight(opts.Height)
	}
	return root
}

func inlineCSS(doc string) string {
	prem, err := premailer.NewPremailerFromString(doc, &premailer.Options{})
	if err != nil {
		Logger("invalid css: %s\n", err)
		return doc
	}
	out, err := prem.Transform()
	if err != nil {
		Logger("error transforming html: %s\n", err)
		return doc
	}
	return out
}

type nodeStack struct {
	stack []*Node
}

func (s *nodeStack) push(n *Node) { s.stack = append(s.stack, n) }
func (s *nodeStack) peek() *Node  { return s.stack[len(s.stack)-1] }

func (s *nodeStack) pop() *Node {
	n := s.peek()
	s.stack = s.stack[:len(s.stack)-1]
	return n
}

func processTag(z *html.Tokenizer) *Node {
	node := NewNode()
	for {
		key, val, more := z.TagAttr()
		if string(key) == "style" {
			applyStyle(node, string(val))
		}
		if !more {
			break
		}
	}
	return node
}

func applyStyle(node *Node, style string) {
	for _, pair := range strings.Split(style, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])

		set, ok := styleMapper[k]
		if !ok {
			Logger("unknown style: %s\n", k)
			continue
		}
		if err := set(node, v); err != nil {
			Logger("invalid value for %s: %s\n", k, err)
		}
	}
}

var styleMapper = map[string]func(*Node, string) error{
	"width":      lengthProp(func(n *Node, v float64) { n.SetWidth(v) }),
	"height":     lengthProp(func(n *Node, v float64) { n.SetHeight(v) }),
	"min-width":  lengthProp(func(n *Node, v float64) { n.SetMinWidth(v) }),
	"min-height": lengthProp(func(n *Node, v float64) { n.SetMinHeight(v) }),
	"max-width":  lengthProp(func(n *Node, v float64) { n.SetMaxWidth(v) }),
	"max-height": lengthProp(func(n *Node, v float64) { n.SetMaxHeight(v) }),

	"left":   edgeProp(EdgeLeft, (*Node).SetPosition),
	"top":    edgeProp(EdgeTop, (*Node).SetPosition),
	"right":  edgeProp(EdgeRight, (*Node).SetPosition),
	"bottom": edgeProp(EdgeBottom, (*Node).SetPosition),
	"start":  edgeProp(EdgeStart, (*Node).SetPosition),
	"end":    edgeProp(EdgeEnd, (*Node).SetPosition),

	"margin":            edgeProp(EdgeAll, (*Node).SetMargin),
	"margin-left":       edgeProp(EdgeLeft, (*Node).SetMargin),
	"margin-top":        edgeProp(EdgeTop, (*Node).SetMargin),
	"margin-right":      edgeProp(EdgeRight, (*Node).SetMargin),
	"margin-bottom":     edgeProp(EdgeBottom, (*Node).SetMargin),
	"margin-start":      edgeProp(EdgeStart, (*Node).SetMargin),
	"margin-end":        edgeProp(EdgeEnd, (*Node).SetMargin),
	"margin-horizontal": edgeProp(EdgeHorizontal, (*Node).SetMargin),
	"margin-vertical":   edgeProp(EdgeVertical, (*Node).SetMargin),

	"padding":            edgeProp(EdgeAll, (*Node).SetPadding),
	"padding-left":       edgeProp(EdgeLeft, (*Node).SetPadding),
	"padding-top":        edgeProp(EdgeTop, (*Node).SetPadding),
	"padding-right":      edgeProp(EdgeRight, (*Node).SetPadding),
	"padding-bottom":     edgeProp(EdgeBottom, (*Node).SetPadding),
	"padding-start":      edgeProp(EdgeStart, (*Node).SetPadding),
	"padding-end":        edgeProp(EdgeEnd, (*Node).SetPadding),
	"padding-horizontal": edgeProp(EdgeHorizontal, (*Node).SetPadding),
	"padding-vertical":   edgeProp(EdgeVertical, (*Node).SetPadding),

	"border-width":        edgeProp(EdgeAll, (*Node).SetBorder),
	"border-left-width":   edgeProp(EdgeLeft, (*Node).SetBorder),
	"border-top-width":    edgeProp(EdgeTop, (*Node).SetBorder),
	"border-right-width":  edgeProp(EdgeRight, (*Node).SetBorder),
	"border-bottom-width": edgeProp(EdgeBottom, (*Node).SetBorder),

	"flex-grow":   floatProp(func(n *Node, v float64) { n.SetFlexGrow(v) }),
	"flex-shrink": floatProp(func(n *Node, v float64) { n.SetFlexShrink(v) }),
	"flex-basis":  lengthProp(func(n *Node, v float64) { n.SetFlexBasis(v) }),

	"direction":       enumProp(parseDirection, (*Node).SetDirection),
	"flex-direction":  enumProp(parseFlexDirection, (*Node).SetFlexDirection),
	"flex-wrap":       enumProp(parseWrap, (*Node).SetWrap),
	"justify-content": enumProp(parseJustify, (*Node).SetJustifyContent),
	"align-items":     enumProp(parseAlign, (*Node).SetAlignItems),
	"align-self":      enumProp(parseAlign, (*Node).SetAlignSelf),
	"align-content":   enumProp(parseAlign, (*Node).SetAlignContent),
	"position":        enumProp(parsePositionType, (*Node).SetPositionType),
	"overflow":        enumProp(parseOverflow, (*Node).SetOverflow),
}

func lengthProp(set func(*Node, float64)) func(*Node, string) error {
	return func(n *Node, val string) error {
		v, err := parseLength(val)
		if err != nil {
			return err
		}
		set(n, v)
		return nil
	}
}

func floatProp(set func(*Node, float64)) func(*Node, string) error {
	return func(n *Node, val string) error {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return err
		}
		set(n, v)
		return nil
	}
}

func edgeProp(edge Edge, set func(*Node, Edge, float64)) func(*Node, string) error {
	return func(n *Node, val string) error {
		v, err := parseLength(val)
		if err != nil {
			return err
		}
		set(n, edge, v)
		return nil
	}
}

func enumProp[T any](parse func(string) (T, error), set func(*Node, T)) func(*Node, string) error {
	return func(n *Node, val string) error {
		v, err := parse(val)
		if err != nil {
			return err
		}
		set(n, v)
		return nil
	}
}

func parseLength(val string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(val, "px"), 64)
}

func parseDirection(val string) (Direction, error) {
	switch val {
	case "inherit":
		return DirectionInherit, nil
	case "ltr":
		return DirectionLTR, nil
	case "rtl":
		return DirectionRTL, nil
	}
	return DirectionInherit, fmt.Errorf("unknown direction: %s", val)
}

func parseFlexDirection(val string) (FlexDirection, error) {
	switch val {
	case "row":
		return FlexDirectionRow, nil
	case "row-reverse":
		return FlexDirectionRowReverse, nil
	case "column":
		return FlexDirectionColumn, nil
	case "column-reverse":
		return FlexDirectionColumnReverse, nil
	}
	return FlexDirectionColumn, fmt.Errorf("unknown flex-direction: %s", val)
}

func parseWrap(val string) (Wrap, error) {
	switch val {
	case "nowrap":
		return WrapNoWrap, nil
	case "wrap":
		return WrapWrap, nil
	}
	return WrapNoWrap, fmt.Errorf("unknown flex-wrap: %s", val)
}

func parseJustify(val string) (Justify, error) {
	switch val {
	case "flex-start", "start":
		return JustifyFlexStart, nil
	case "center":
		return JustifyCenter, nil
	case "flex-end", "end":
		return JustifyFlexEnd, nil
	case "space-between":
		return JustifySpaceBetween, nil
	case "space-around":
		return JustifySpaceAround, nil
	}
	return JustifyFlexStart, fmt.Errorf("unknown justify: %s", val)
}

func parseAlign(val string) (Align, error) {
	switch val {
	case "auto":
		return AlignAuto, nil
	case "flex-start", "start":
		return AlignFlexStart, nil
	case "center":
		return AlignCenter, nil
	case "flex-end", "end":
		return AlignFlexEnd, nil
	case "stretch":
		return AlignStretch, nil
	}
	return AlignAuto, fmt.Errorf("unknown align: %s", val)
}

func parsePositionType(val string) (PositionType, error) {
	switch val {
	case "relative", "static":
		return PositionTypeRelative, nil
	case "absolute":
		return PositionTypeAbsolute, nil
	}
	return PositionTypeRelative, fmt.Errorf("unknown position: %s", val)
}

func parseOverflow(val string) (Overflow, error) {
	switch val {
	case "visible":
		return OverflowVisible, nil
	case "hidden":
		return OverflowHidden, nil
	case "scroll":
		return OverflowScroll, nil
	}
	return OverflowVisible, fmt.Errorf("unknown overflow: %s", val)
}
