package flexlay

import "fmt"

// Logger receives the pretty-printer's output. Replace it to route the dump
// elsewhere; it defaults to stdout.
var Logger = func(format string, args ...any) {
	fmt.Printf(format, args...)
}

// Print dumps the node (and, with PrintChildren, its subtree) through
// Logger. PrintLayout selects the computed geometry, PrintStyle the input
// style.
func Print(n *Node, opts PrintOptions) {
	printNode(n, opts, 0)
}

func printNode(n *Node, opts PrintOptions, level int) {
	indent(level)
	Logger("{")

	if n.print != nil {
		n.print(n.context)
	}

	if opts&PrintLayout != 0 {
		Logger("layout: {")
		Logger("width: %g, ", n.layout.dimensions[DimensionWidth])
		Logger("height: %g, ", n.layout.dimensions[DimensionHeight])
		Logger("top: %g, ", n.layout.position[EdgeTop])
		Logger("left: %g", n.layout.position[EdgeLeft])
		Logger("}, ")
	}

	if opts&PrintStyle != 0 {
		s := &n.style
		if s.flexDirection != FlexDirectionColumn {
			Logger("flexDirection: '%s', ", s.flexDirection)
		}
		if s.justifyContent != JustifyFlexStart {
			Logger("justifyContent: '%s', ", s.justifyContent)
		}
		if s.alignItems != AlignStretch {
			Logger("alignItems: '%s', ", s.alignItems)
		}
		if s.alignContent != AlignFlexStart {
			Logger("alignContent: '%s', ", s.alignContent)
		}
		if s.alignSelf != AlignAuto {
			Logger("alignSelf: '%s', ", s.alignSelf)
		}
		if s.flexGrow != 0 {
			Logger("flexGrow: %g, ", s.flexGrow)
		}
		if s.flexShrink != 0 {
			Logger("flexShrink: %g, ", s.flexShrink)
		}
		if !IsUndefined(s.flexBasis) {
			Logger("flexBasis: %g, ", s.flexBasis)
		}
		if s.overflow != OverflowVisible {
			Logger("overflow: '%s', ", s.overflow)
		}
		printEdges("margin", &s.margin)
		printEdges("padding", &s.padding)
		printEdges("border", &s.border)
		printEdges("position", &s.position)
		printDimension("width", s.dimensions[DimensionWidth])
		printDimension("height", s.dimensions[DimensionHeight])
		printDimension("minWidth", s.minDimensions[DimensionWidth])
		printDimension("minHeight", s.minDimensions[DimensionHeight])
		printDimension("maxWidth", s.maxDimensions[DimensionWidth])
		printDimension("maxHeight", s.maxDimensions[DimensionHeight])
		if s.positionType == PositionTypeAbsolute {
			Logger("position: 'absolute', ")
		}
		if s.flexWrap == WrapWrap {
			Logger("flexWrap: 'wrap', ")
		}
		if s.direction != DirectionInherit {
			Logger("direction: '%s', ", s.direction)
		}
		if n.measure != nil {
			Logger("hasMeasure: true, ")
		}
	}

	if opts&PrintChildren != 0 && len(n.children) > 0 {
		Logger("children: [\n")
		for _, child := range n.children {
			printNode(child, opts, level+1)
		}
		indent(level)
		Logger("]},\n")
	} else {
		Logger("},\n")
	}
}

func printEdges(name string, edges *[edgeCount]float64) {
	for e := EdgeLeft; int(e) < edgeCount; e++ {
		if !IsUndefined(edges[e]) {
			Logger("%s%s: %g, ", name, edgeSuffix(e), edges[e])
		}
	}
}

func edgeSuffix(e Edge) string {
	switch e {
	case EdgeLeft:
		return "Left"
	case EdgeTop:
		return "Top"
	case EdgeRight:
		return "Right"
	case EdgeBottom:
		return "Bottom"
	case EdgeStart:
		return "Start"
	case EdgeEnd:
		return "End"
	case EdgeHorizontal:
		return "Horizontal"
	case EdgeVertical:
		return "Vertical"
	default:
		return ""
	}
}

func printDimension(name string, v float64) {
	if !IsUndefined(v) {
		Logger("%s: %g, ", name, v)
	}
}

func indent(level int) {
	for i := 0; i < level; i++ {
		Logger("  ")
	}
}
