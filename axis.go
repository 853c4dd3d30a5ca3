package flexlay

import "math"

// Per-axis edge tables: the leading and trailing edges of each flex
// direction, the edge used for the computed position, and the dimension
// measured along it.
var (
	leading  = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	trailing = [4]Edge{EdgeBottom, EdgeTop, EdgeRight, EdgeLeft}
	pos      = [4]Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}
	dim      = [4]Dimension{DimensionHeight, DimensionHeight, DimensionWidth, DimensionWidth}
)

func isRowDirection(d FlexDirection) bool {
	return d == FlexDirectionRow || d == FlexDirectionRowReverse
}

func isColumnDirection(d FlexDirection) bool {
	return d == FlexDirectionColumn || d == FlexDirectionColumnReverse
}

func isReverseDirection(d FlexDirection) bool {
	return d == FlexDirectionRowReverse || d == FlexDirectionColumnReverse
}

// resolveDirection maps an inherited writing direction onto a concrete one.
func resolveDirection(n *Node, parentDirection Direction) Direction {
	direction := n.style.direction
	if direction == DirectionInherit {
		if parentDirection == DirectionLTR || parentDirection == DirectionRTL {
			return parentDirection
		}
		return DirectionLTR
	}
	return direction
}

// resolveAxis swaps row and row-reverse under RTL; column axes are
// unaffected by the writing direction.
func resolveAxis(flexDirection FlexDirection, direction Direction) FlexDirection {
	if direction == DirectionRTL {
		if flexDirection == FlexDirectionRow {
			return FlexDirectionRowReverse
		}
		if flexDirection == FlexDirectionRowReverse {
			return FlexDirectionRow
		}
	}
	return flexDirection
}

func crossFlexDirection(mainAxis FlexDirection, direction Direction) FlexDirection {
	if isColumnDirection(mainAxis) {
		return resolveAxis(FlexDirectionRow, direction)
	}
	return FlexDirectionColumn
}

// Edge-aware accessors. On a row axis, start/end override left/right when
// set. Padding and border clamp negatives to zero; margin does not.

func (n *Node) leadingMargin(axis FlexDirection) float64 {
	if isRowDirection(axis) && !IsUndefined(n.style.margin[EdgeStart]) {
		return n.style.margin[EdgeStart]
	}
	return computedEdgeValue(&n.style.margin, leading[axis], 0)
}

func (n *Node) trailingMargin(axis FlexDirection) float64 {
	if isRowDirection(axis) && !IsUndefined(n.style.margin[EdgeEnd]) {
		return n.style.margin[EdgeEnd]
	}
	return computedEdgeValue(&n.style.margin, trailing[axis], 0)
}

func (n *Node) leadingPadding(axis FlexDirection) float64 {
	if isRowDirection(axis) && !IsUndefined(n.style.padding[EdgeStart]) && n.style.padding[EdgeStart] >= 0 {
		return n.style.padding[EdgeStart]
	}
	return math.Max(computedEdgeValue(&n.style.padding, leading[axis], 0), 0)
}

func (n *Node) trailingPadding(axis FlexDirection) float64 {
	if isRowDirection(axis) && !IsUndefined(n.style.padding[EdgeEnd]) && n.style.padding[EdgeEnd] >= 0 {
		return n.style.padding[EdgeEnd]
	}
	return math.Max(computedEdgeValue(&n.style.padding, trailing[axis], 0), 0)
}

func (n *Node) leadingBorder(axis FlexDirection) float64 {
	if isRowDirection(axis) && !IsUndefined(n.style.border[EdgeStart]) && n.style.border[EdgeStart] >= 0 {
		return n.style.border[EdgeStart]
	}
	return math.Max(computedEdgeValue(&n.style.border, leading[axis], 0), 0)
}

func (n *Node) trailingBorder(axis FlexDirection) float64 {
	if isRowDirection(axis) && !IsUndefined(n.style.border[EdgeEnd]) && n.style.border[EdgeEnd] >= 0 {
		return n.style.border[EdgeEnd]
	}
	return math.Max(computedEdgeValue(&n.style.border, trailing[axis], 0), 0)
}

func (n *Node) leadingPaddingAndBorder(axis FlexDirection) float64 {
	return n.leadingPadding(axis) + n.leadingBorder(axis)
}

func (n *Node) trailingPaddingAndBorder(axis FlexDirection) float64 {
	return n.trailingPadding(axis) + n.trailingBorder(axis)
}

func (n *Node) marginAxis(axis FlexDirection) float64 {
	return n.leadingMargin(axis) + n.trailingMargin(axis)
}

func (n *Node) paddingAndBorderAxis(axis FlexDirection) float64 {
	return n.leadingPaddingAndBorder(axis) + n.trailingPaddingAndBorder(axis)
}

func (n *Node) alignItem(child *Node) Align {
	if child.style.alignSelf != AlignAuto {
		return child.style.alignSelf
	}
	return n.style.alignItems
}

// boundAxisWithinMinAndMax clamps value to the node's min/max dimension
// along axis. Undefined or negative bounds are ignored.
func (n *Node) boundAxisWithinMinAndMax(axis FlexDirection, value float64) float64 {
	min := n.style.minDimensions[dim[axis]]
	max := n.style.maxDimensions[dim[axis]]

	bound := value
	if !IsUndefined(max) && max >= 0 && bound > max {
		bound = max
	}
	if !IsUndefined(min) && min >= 0 && bound < min {
		bound = min
	}
	return bound
}

// boundAxis additionally floors the value at the padding+border of the
// axis, since a box can never shrink below its own chrome.
func (n *Node) boundAxis(axis FlexDirection, value float64) float64 {
	return math.Max(n.boundAxisWithinMinAndMax(axis, value), n.paddingAndBorderAxis(axis))
}

func (n *Node) isStyleDimDefined(axis FlexDirection) bool {
	v := n.style.dimensions[dim[axis]]
	return !IsUndefined(v) && v >= 0
}

func (n *Node) isLayoutDimDefined(axis FlexDirection) bool {
	v := n.layout.measuredDimensions[dim[axis]]
	return !IsUndefined(v) && v >= 0
}

func (n *Node) isLeadingPosDefined(axis FlexDirection) bool {
	return !IsUndefined(computedEdgeValue(&n.style.position, leading[axis], Undefined))
}

func (n *Node) isTrailingPosDefined(axis FlexDirection) bool {
	return !IsUndefined(computedEdgeValue(&n.style.position, trailing[axis], Undefined))
}

func (n *Node) leadingPosition(axis FlexDirection) float64 {
	v := computedEdgeValue(&n.style.position, leading[axis], Undefined)
	if IsUndefined(v) {
		return 0
	}
	return v
}

func (n *Node) trailingPosition(axis FlexDirection) float64 {
	v := computedEdgeValue(&n.style.position, trailing[axis], Undefined)
	if IsUndefined(v) {
		return 0
	}
	return v
}

// relativePosition is the offset applied to a relatively positioned node:
// the leading position when set, otherwise the negated trailing one.
func (n *Node) relativePosition(axis FlexDirection) float64 {
	if n.isLeadingPosDefined(axis) {
		return n.leadingPosition(axis)
	}
	return -n.trailingPosition(axis)
}

func (n *Node) dimWithMargin(axis FlexDirection) float64 {
	return n.layout.measuredDimensions[dim[axis]] + n.marginAxis(axis)
}

func (n *Node) isFlex() bool {
	return n.style.positionType == PositionTypeRelative &&
		(n.style.flexGrow != 0 || n.style.flexShrink != 0)
}

// setPosition seeds the node's layout position from its margins and
// relative offsets along both axes.
func (n *Node) setPosition(direction Direction) {
	mainAxis := resolveAxis(n.style.flexDirection, direction)
	crossAxis := crossFlexDirection(mainAxis, direction)

	n.layout.position[leading[mainAxis]] = n.leadingMargin(mainAxis) + n.relativePosition(mainAxis)
	n.layout.position[trailing[mainAxis]] = n.trailingMargin(mainAxis) + n.relativePosition(mainAxis)
	n.layout.position[leading[crossAxis]] = n.leadingMargin(crossAxis) + n.relativePosition(crossAxis)
	n.layout.position[trailing[crossAxis]] = n.trailingMargin(crossAxis) + n.relativePosition(crossAxis)
}

// setTrailingPosition rewrites a child's trailing-edge position so that
// reverse axes read naturally from the trailing edge.
func setTrailingPosition(parent, child *Node, axis FlexDirection) {
	child.layout.position[trailing[axis]] = parent.layout.measuredDimensions[dim[axis]] -
		child.layout.measuredDimensions[dim[axis]] - child.layout.position[pos[axis]]
}
