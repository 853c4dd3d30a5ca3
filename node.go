package flexlay

// Size is the result of a measure callback.
type Size struct {
	Width  float64
	Height float64
}

// MeasureFunc computes the content size of a leaf node under the given
// constraints. It must return non-negative finite floats and must not
// mutate any node in the tree.
type MeasureFunc func(context any, width float64, widthMode MeasureMode, height float64, heightMode MeasureMode) Size

// PrintFunc lets a node append custom output when the tree is printed.
type PrintFunc func(context any)

// Layout holds the computed output of a layout pass.
type Layout struct {
	position   [4]float64
	dimensions [2]float64
	direction  Direction

	computedFlexBasis float64

	// measuredDimensions is the authoritative per-pass output; dimensions
	// is promoted from it only when a full layout is performed.
	measuredDimensions [2]float64

	generationCount     uint32
	lastParentDirection Direction

	nextCachedMeasurementsIndex int
	cachedMeasurements          [maxCachedResults]cachedMeasurement
	cachedLayout                cachedMeasurement
}

// Node is a box in the layout tree.
type Node struct {
	style  Style
	layout Layout

	parent   *Node
	children []*Node

	measure MeasureFunc
	print   PrintFunc
	context any

	// lineIndex is assigned while packing children into flex lines.
	lineIndex int
	// nextChild threads the transient relative/absolute lists used within
	// a single layout activation.
	nextChild *Node

	isText       bool
	isDirty      bool
	hasNewLayout bool
}

// NewNode returns a node carrying the default style and an empty layout.
func NewNode() *Node {
	n := &Node{
		style:        newStyle(),
		hasNewLayout: true,
		isDirty:      true,
	}
	n.layout.computedFlexBasis = Undefined
	n.layout.dimensions[DimensionWidth] = Undefined
	n.layout.dimensions[DimensionHeight] = Undefined
	n.layout.measuredDimensions[DimensionWidth] = Undefined
	n.layout.measuredDimensions[DimensionHeight] = Undefined
	n.layout.lastParentDirection = Direction(0xff)
	n.layout.cachedLayout.widthMeasureMode = measureModeUnset
	n.layout.cachedLayout.heightMeasureMode = measureModeUnset
	for i := range n.layout.cachedMeasurements {
		n.layout.cachedMeasurements[i].widthMeasureMode = measureModeUnset
		n.layout.cachedMeasurements[i].heightMeasureMode = measureModeUnset
	}
	return n
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the child at index i.
func (n *Node) Child(i int) *Node { return n.children[i] }

// InsertChild places child at index i. The child must not already have a
// parent, and nodes with measure callbacks cannot have children.
func (n *Node) InsertChild(child *Node, i int) {
	assertCond(child.parent == nil, "child already has a parent, it must be removed first")
	assertCond(n.measure == nil, "nodes with measure functions cannot have children")

	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	child.parent = n
	n.markDirtyInternal()
}

// RemoveChild detaches child from the node. It reports whether the child
// was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			n.markDirtyInternal()
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
	n.markDirtyInternal()
}

// Reset recursively detaches and resets every descendant, then restores the
// node itself to its initial state. The node must not have a parent.
func (n *Node) Reset() {
	assertCond(n.parent == nil, "cannot reset a node that still has a parent")
	n.resetRecursive()
}

func (n *Node) resetRecursive() {
	for _, c := range n.children {
		c.parent = nil
		c.resetRecursive()
	}
	*n = *NewNode()
}

// markDirtyInternal is the unchecked variant used by style setters and tree
// mutations.
func (n *Node) markDirtyInternal() {
	if n.isDirty {
		return
	}
	n.isDirty = true
	n.layout.computedFlexBasis = Undefined
	if n.parent != nil {
		n.parent.markDirtyInternal()
	}
}

// MarkDirty invalidates the node's cached measurement. Only leaf nodes with
// a measure callback have state outside the engine, so only they may be
// dirtied directly.
func (n *Node) MarkDirty() {
	assertCond(len(n.children) == 0, "only leaf nodes should be manually marked as dirty")
	assertCond(n.measure != nil, "only leaf nodes with custom measure functions should be manually marked as dirty")
	n.markDirtyInternal()
}

// IsDirty reports whether the node needs to be re-measured on the next pass.
func (n *Node) IsDirty() bool { return n.isDirty }

// HasNewLayout reports whether the last CalculateLayout produced a fresh
// layout for this node.
func (n *Node) HasNewLayout() bool { return n.hasNewLayout }

// SetHasNewLayout lets the caller acknowledge a fresh layout.
func (n *Node) SetHasNewLayout(v bool) { n.hasNewLayout = v }

// SetMeasureFunc installs a measure callback. Only childless nodes can be
// measured.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if fn != nil {
		assertCond(len(n.children) == 0, "cannot set measure function on a node with children")
	}
	n.measure = fn
	n.markDirtyInternal()
}

// MeasureFunc returns the installed measure callback, if any.
func (n *Node) MeasureFunc() MeasureFunc { return n.measure }

// SetPrintFunc installs a callback invoked by the pretty-printer.
func (n *Node) SetPrintFunc(fn PrintFunc) { n.print = fn }

// SetContext attaches an opaque value passed to the measure and print
// callbacks.
func (n *Node) SetContext(ctx any) { n.context = ctx }

// Context returns the attached opaque value.
func (n *Node) Context() any { return n.context }

// SetIsText flags the node as text content, enabling the specialized
// measurement-cache heuristics.
func (n *Node) SetIsText(v bool) { n.isText = v }

// IsText reports whether the node is flagged as text content.
func (n *Node) IsText() bool { return n.isText }

// LineIndex returns the flex line the node was packed into during the last
// layout of its parent.
func (n *Node) LineIndex() int { return n.lineIndex }

// Style setters. Every setter is a no-op when the new value equals the old
// one; otherwise it dirty-propagates to the root.

func (n *Node) SetDirection(v Direction) {
	if n.style.direction == v {
		return
	}
	n.style.direction = v
	n.markDirtyInternal()
}

func (n *Node) Direction() Direction { return n.style.direction }

func (n *Node) SetFlexDirection(v FlexDirection) {
	if n.style.flexDirection == v {
		return
	}
	n.style.flexDirection = v
	n.markDirtyInternal()
}

func (n *Node) FlexDirection() FlexDirection { return n.style.flexDirection }

func (n *Node) SetJustifyContent(v Justify) {
	if n.style.justifyContent == v {
		return
	}
	n.style.justifyContent = v
	n.markDirtyInternal()
}

func (n *Node) JustifyContent() Justify { return n.style.justifyContent }

func (n *Node) SetAlignContent(v Align) {
	if n.style.alignContent == v {
		return
	}
	n.style.alignContent = v
	n.markDirtyInternal()
}

func (n *Node) AlignContent() Align { return n.style.alignContent }

func (n *Node) SetAlignItems(v Align) {
	if n.style.alignItems == v {
		return
	}
	n.style.alignItems = v
	n.markDirtyInternal()
}

func (n *Node) AlignItems() Align { return n.style.alignItems }

func (n *Node) SetAlignSelf(v Align) {
	if n.style.alignSelf == v {
		return
	}
	n.style.alignSelf = v
	n.markDirtyInternal()
}

func (n *Node) AlignSelf() Align { return n.style.alignSelf }

func (n *Node) SetPositionType(v PositionType) {
	if n.style.positionType == v {
		return
	}
	n.style.positionType = v
	n.markDirtyInternal()
}

func (n *Node) PositionType() PositionType { return n.style.positionType }

func (n *Node) SetWrap(v Wrap) {
	if n.style.flexWrap == v {
		return
	}
	n.style.flexWrap = v
	n.markDirtyInternal()
}

func (n *Node) Wrap() Wrap { return n.style.flexWrap }

func (n *Node) SetOverflow(v Overflow) {
	if n.style.overflow == v {
		return
	}
	n.style.overflow = v
	n.markDirtyInternal()
}

func (n *Node) Overflow() Overflow { return n.style.overflow }

func (n *Node) SetFlexGrow(v float64) {
	if valueEqual(n.style.flexGrow, v) {
		return
	}
	n.style.flexGrow = v
	n.markDirtyInternal()
}

func (n *Node) FlexGrow() float64 { return n.style.flexGrow }

func (n *Node) SetFlexShrink(v float64) {
	if valueEqual(n.style.flexShrink, v) {
		return
	}
	n.style.flexShrink = v
	n.markDirtyInternal()
}

func (n *Node) FlexShrink() float64 { return n.style.flexShrink }

func (n *Node) SetFlexBasis(v float64) {
	if valueEqual(n.style.flexBasis, v) {
		return
	}
	n.style.flexBasis = v
	n.markDirtyInternal()
}

func (n *Node) FlexBasis() float64 { return n.style.flexBasis }

func (n *Node) SetMargin(edge Edge, v float64) {
	if valueEqual(n.style.margin[edge], v) {
		return
	}
	n.style.margin[edge] = v
	n.markDirtyInternal()
}

func (n *Node) Margin(edge Edge) float64 { return n.style.margin[edge] }

func (n *Node) SetPosition(edge Edge, v float64) {
	if valueEqual(n.style.position[edge], v) {
		return
	}
	n.style.position[edge] = v
	n.markDirtyInternal()
}

func (n *Node) Position(edge Edge) float64 { return n.style.position[edge] }

func (n *Node) SetPadding(edge Edge, v float64) {
	if valueEqual(n.style.padding[edge], v) {
		return
	}
	n.style.padding[edge] = v
	n.markDirtyInternal()
}

func (n *Node) Padding(edge Edge) float64 { return n.style.padding[edge] }

func (n *Node) SetBorder(edge Edge, v float64) {
	if valueEqual(n.style.border[edge], v) {
		return
	}
	n.style.border[edge] = v
	n.markDirtyInternal()
}

func (n *Node) Border(edge Edge) float64 { return n.style.border[edge] }

func (n *Node) SetWidth(v float64) {
	if valueEqual(n.style.dimensions[DimensionWidth], v) {
		return
	}
	n.style.dimensions[DimensionWidth] = v
	n.markDirtyInternal()
}

func (n *Node) Width() float64 { return n.style.dimensions[DimensionWidth] }

func (n *Node) SetHeight(v float64) {
	if valueEqual(n.style.dimensions[DimensionHeight], v) {
		return
	}
	n.style.dimensions[DimensionHeight] = v
	n.markDirtyInternal()
}

func (n *Node) Height() float64 { return n.style.dimensions[DimensionHeight] }

func (n *Node) SetMinWidth(v float64) {
	if valueEqual(n.style.minDimensions[DimensionWidth], v) {
		return
	}
	n.style.minDimensions[DimensionWidth] = v
	n.markDirtyInternal()
}

func (n *Node) MinWidth() float64 { return n.style.minDimensions[DimensionWidth] }

func (n *Node) SetMinHeight(v float64) {
	if valueEqual(n.style.minDimensions[DimensionHeight], v) {
		return
	}
	n.style.minDimensions[DimensionHeight] = v
	n.markDirtyInternal()
}

func (n *Node) MinHeight() float64 { return n.style.minDimensions[DimensionHeight] }

func (n *Node) SetMaxWidth(v float64) {
	if valueEqual(n.style.maxDimensions[DimensionWidth], v) {
		return
	}
	n.style.maxDimensions[DimensionWidth] = v
	n.markDirtyInternal()
}

func (n *Node) MaxWidth() float64 { return n.style.maxDimensions[DimensionWidth] }

func (n *Node) SetMaxHeight(v float64) {
	if valueEqual(n.style.maxDimensions[DimensionHeight], v) {
		return
	}
	n.style.maxDimensions[DimensionHeight] = v
	n.markDirtyInternal()
}

func (n *Node) MaxHeight() float64 { return n.style.maxDimensions[DimensionHeight] }

// Layout getters. All positions are relative to the parent.

func (n *Node) LayoutLeft() float64 { return n.layout.position[EdgeLeft] }

func (n *Node) LayoutTop() float64 { return n.layout.position[EdgeTop] }

func (n *Node) LayoutRight() float64 { return n.layout.position[EdgeRight] }

func (n *Node) LayoutBottom() float64 { return n.layout.position[EdgeBottom] }

func (n *Node) LayoutWidth() float64 { return n.layout.dimensions[DimensionWidth] }

func (n *Node) LayoutHeight() float64 { return n.layout.dimensions[DimensionHeight] }

func (n *Node) LayoutDirection() Direction { return n.layout.direction }
