package flexlay

import "math"

// Debug makes CalculateLayout pretty-print the tree through Logger after
// every pass that produced a fresh layout.
var Debug = false

// currentGenerationCount is bumped once per CalculateLayout call and is the
// cheap mass-invalidation signal for per-node caches. Process-wide state;
// the engine is single-threaded by contract.
var currentGenerationCount uint32

// CalculateLayout computes measured dimensions and positions for the whole
// tree rooted at root. Availabilities may be Undefined, in which case the
// root's style dimensions or max dimensions supply the constraint.
func CalculateLayout(root *Node, availableWidth, availableHeight float64, parentDirection Direction) {
	// Increment the generation count. This will force the recursive routine
	// to visit all dirty nodes at least once; subsequent layouts will only
	// be processed when the input parameters change.
	currentGenerationCount++

	widthMeasureMode := MeasureModeUndefined
	heightMeasureMode := MeasureModeUndefined

	if !IsUndefined(availableWidth) {
		widthMeasureMode = MeasureModeExactly
	} else if root.isStyleDimDefined(FlexDirectionRow) {
		availableWidth = root.style.dimensions[DimensionWidth] + root.marginAxis(FlexDirectionRow)
		widthMeasureMode = MeasureModeExactly
	} else if root.style.maxDimensions[DimensionWidth] >= 0 {
		availableWidth = root.style.maxDimensions[DimensionWidth]
		widthMeasureMode = MeasureModeAtMost
	}

	if !IsUndefined(availableHeight) {
		heightMeasureMode = MeasureModeExactly
	} else if root.isStyleDimDefined(FlexDirectionColumn) {
		availableHeight = root.style.dimensions[DimensionHeight] + root.marginAxis(FlexDirectionColumn)
		heightMeasureMode = MeasureModeExactly
	} else if root.style.maxDimensions[DimensionHeight] >= 0 {
		availableHeight = root.style.maxDimensions[DimensionHeight]
		heightMeasureMode = MeasureModeAtMost
	}

	if layoutNodeInternal(root, availableWidth, availableHeight, parentDirection,
		widthMeasureMode, heightMeasureMode, true, "initial") {
		root.setPosition(root.layout.direction)

		if Debug {
			Print(root, PrintLayout|PrintChildren|PrintStyle)
		}
	}
}

// layoutNodeInternal is the cache-aware wrapper around layoutNodeImpl. It
// keeps one cache slot for full layouts and a small ring for measurements:
// a layout pass touches each node at most once per tree layout, but several
// measurements may be needed before the flex dimensions settle. It reports
// whether the node's layout was actually (re)computed.
func layoutNodeInternal(n *Node, availableWidth, availableHeight float64,
	parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode,
	performLayout bool, reason string) bool {
	_ = reason
	layout := &n.layout

	needToVisitNode := (n.isDirty && layout.generationCount != currentGenerationCount) ||
		layout.lastParentDirection != parentDirection

	if needToVisitNode {
		// Invalidate the cached results.
		layout.nextCachedMeasurementsIndex = 0
		layout.cachedLayout.widthMeasureMode = measureModeUnset
		layout.cachedLayout.heightMeasureMode = measureModeUnset
	}

	var cachedResults *cachedMeasurement

	// Nodes with measure functions are the most expensive to measure, so
	// they consult the compatibility predicate; everything else requires an
	// exact constraint match.
	if n.measure != nil && len(n.children) == 0 {
		marginAxisRow := n.marginAxis(FlexDirectionRow)
		marginAxisColumn := n.marginAxis(FlexDirectionColumn)

		// First, try to use the layout cache.
		if canUseCachedMeasurement(n.isText, availableWidth, availableHeight,
			marginAxisRow, marginAxisColumn, widthMeasureMode, heightMeasureMode,
			layout.cachedLayout) {
			cachedResults = &layout.cachedLayout
		} else {
			// Try to use the measurement cache.
			for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
				if canUseCachedMeasurement(n.isText, availableWidth, availableHeight,
					marginAxisRow, marginAxisColumn, widthMeasureMode, heightMeasureMode,
					layout.cachedMeasurements[i]) {
					cachedResults = &layout.cachedMeasurements[i]
					break
				}
			}
		}
	} else if performLayout {
		if valueEqual(layout.cachedLayout.availableWidth, availableWidth) &&
			valueEqual(layout.cachedLayout.availableHeight, availableHeight) &&
			layout.cachedLayout.widthMeasureMode == widthMeasureMode &&
			layout.cachedLayout.heightMeasureMode == heightMeasureMode {
			cachedResults = &layout.cachedLayout
		}
	} else {
		for i := 0; i < layout.nextCachedMeasurementsIndex; i++ {
			c := &layout.cachedMeasurements[i]
			if valueEqual(c.availableWidth, availableWidth) &&
				valueEqual(c.availableHeight, availableHeight) &&
				c.widthMeasureMode == widthMeasureMode &&
				c.heightMeasureMode == heightMeasureMode {
				cachedResults = c
				break
			}
		}
	}

	if !needToVisitNode && cachedResults != nil {
		layout.measuredDimensions[DimensionWidth] = cachedResults.computedWidth
		layout.measuredDimensions[DimensionHeight] = cachedResults.computedHeight
	} else {
		layoutNodeImpl(n, availableWidth, availableHeight, parentDirection,
			widthMeasureMode, heightMeasureMode, performLayout)

		layout.lastParentDirection = parentDirection

		if cachedResults == nil {
			var entry *cachedMeasurement
			if performLayout {
				entry = &layout.cachedLayout
			} else {
				if layout.nextCachedMeasurementsIndex == maxCachedResults {
					layout.nextCachedMeasurementsIndex = 0
				}
				entry = &layout.cachedMeasurements[layout.nextCachedMeasurementsIndex]
				layout.nextCachedMeasurementsIndex++
			}
			entry.availableWidth = availableWidth
			entry.availableHeight = availableHeight
			entry.widthMeasureMode = widthMeasureMode
			entry.heightMeasureMode = heightMeasureMode
			entry.computedWidth = layout.measuredDimensions[DimensionWidth]
			entry.computedHeight = layout.measuredDimensions[DimensionHeight]
		}
	}

	if performLayout {
		n.layout.dimensions[DimensionWidth] = n.layout.measuredDimensions[DimensionWidth]
		n.layout.dimensions[DimensionHeight] = n.layout.measuredDimensions[DimensionHeight]
		n.hasNewLayout = true
		n.isDirty = false
	}

	layout.generationCount = currentGenerationCount
	return needToVisitNode || cachedResults == nil
}

// layoutNodeImpl is a single activation of the layout algorithm. It sets
// measuredDimensions along both axes and, when performLayout is true, the
// positions of every child.
func layoutNodeImpl(n *Node, availableWidth, availableHeight float64,
	parentDirection Direction, widthMeasureMode, heightMeasureMode MeasureMode,
	performLayout bool) {
	assertCond(IsUndefined(availableWidth) == (widthMeasureMode == MeasureModeUndefined),
		"availableWidth is indefinite so widthMeasureMode must be undefined")
	assertCond(IsUndefined(availableHeight) == (heightMeasureMode == MeasureModeUndefined),
		"availableHeight is indefinite so heightMeasureMode must be undefined")

	paddingAndBorderAxisRow := n.paddingAndBorderAxis(FlexDirectionRow)
	paddingAndBorderAxisColumn := n.paddingAndBorderAxis(FlexDirectionColumn)
	marginAxisRow := n.marginAxis(FlexDirectionRow)
	marginAxisColumn := n.marginAxis(FlexDirectionColumn)

	direction := resolveDirection(n, parentDirection)
	n.layout.direction = direction

	// Leaf with a measure callback.
	if n.measure != nil && len(n.children) == 0 {
		innerWidth := availableWidth - marginAxisRow - paddingAndBorderAxisRow
		innerHeight := availableHeight - marginAxisColumn - paddingAndBorderAxisColumn

		if widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
			// Don't bother sizing text under exact constraints.
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, availableWidth-marginAxisRow)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, availableHeight-marginAxisColumn)
		} else if innerWidth <= 0 || innerHeight <= 0 {
			// No room for content.
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, 0)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, 0)
		} else {
			measured := n.measure(n.context, innerWidth, widthMeasureMode, innerHeight, heightMeasureMode)

			w := availableWidth - marginAxisRow
			if widthMeasureMode == MeasureModeUndefined || widthMeasureMode == MeasureModeAtMost {
				w = measured.Width + paddingAndBorderAxisRow
			}
			h := availableHeight - marginAxisColumn
			if heightMeasureMode == MeasureModeUndefined || heightMeasureMode == MeasureModeAtMost {
				h = measured.Height + paddingAndBorderAxisColumn
			}
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, w)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, h)
		}
		return
	}

	// For nodes with no children, use the available values when provided,
	// or the minimum size indicated by padding and border.
	childCount := len(n.children)
	if childCount == 0 {
		w := availableWidth - marginAxisRow
		if widthMeasureMode == MeasureModeUndefined || widthMeasureMode == MeasureModeAtMost {
			w = paddingAndBorderAxisRow
		}
		h := availableHeight - marginAxisColumn
		if heightMeasureMode == MeasureModeUndefined || heightMeasureMode == MeasureModeAtMost {
			h = paddingAndBorderAxisColumn
		}
		n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, w)
		n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, h)
		return
	}

	// When only measuring, several common cases can be resolved without
	// running the remainder of the algorithm.
	if !performLayout {
		if widthMeasureMode == MeasureModeAtMost && availableWidth <= 0 &&
			heightMeasureMode == MeasureModeAtMost && availableHeight <= 0 {
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, 0)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, 0)
			return
		}
		if widthMeasureMode == MeasureModeAtMost && availableWidth <= 0 {
			h := 0.0
			if !IsUndefined(availableHeight) {
				h = availableHeight - marginAxisColumn
			}
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, 0)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, h)
			return
		}
		if heightMeasureMode == MeasureModeAtMost && availableHeight <= 0 {
			w := 0.0
			if !IsUndefined(availableWidth) {
				w = availableWidth - marginAxisRow
			}
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, w)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, 0)
			return
		}
		if widthMeasureMode == MeasureModeExactly && heightMeasureMode == MeasureModeExactly {
			n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, availableWidth-marginAxisRow)
			n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, availableHeight-marginAxisColumn)
			return
		}
	}

	mainAxis := resolveAxis(n.style.flexDirection, direction)
	crossAxis := crossFlexDirection(mainAxis, direction)
	isMainAxisRow := isRowDirection(mainAxis)
	justifyContent := n.style.justifyContent
	isNodeFlexWrap := n.style.flexWrap == WrapWrap

	var firstAbsoluteChild *Node
	var currentAbsoluteChild *Node

	leadingPaddingAndBorderMain := n.leadingPaddingAndBorder(mainAxis)
	trailingPaddingAndBorderMain := n.trailingPaddingAndBorder(mainAxis)
	leadingPaddingAndBorderCross := n.leadingPaddingAndBorder(crossAxis)
	paddingAndBorderAxisMain := n.paddingAndBorderAxis(mainAxis)
	paddingAndBorderAxisCross := n.paddingAndBorderAxis(crossAxis)

	measureModeMainDim := heightMeasureMode
	measureModeCrossDim := widthMeasureMode
	if isMainAxisRow {
		measureModeMainDim = widthMeasureMode
		measureModeCrossDim = heightMeasureMode
	}

	// Available size along each axis after removing margin and chrome.
	availableInnerWidth := availableWidth - marginAxisRow - paddingAndBorderAxisRow
	availableInnerHeight := availableHeight - marginAxisColumn - paddingAndBorderAxisColumn
	availableInnerMainDim := availableInnerHeight
	availableInnerCrossDim := availableInnerWidth
	if isMainAxisRow {
		availableInnerMainDim = availableInnerWidth
		availableInnerCrossDim = availableInnerHeight
	}

	// Determine the flex basis of each child, collecting absolute children
	// into a scratch list threaded through nextChild.
	for i := 0; i < childCount; i++ {
		child := n.children[i]

		if performLayout {
			// Seed the child's position relative to the parent.
			childDirection := resolveDirection(child, direction)
			child.setPosition(childDirection)
		}

		if child.style.positionType == PositionTypeAbsolute {
			// Absolute children don't participate in flex layout; process
			// them after the container size is known.
			if firstAbsoluteChild == nil {
				firstAbsoluteChild = child
			}
			if currentAbsoluteChild != nil {
				currentAbsoluteChild.nextChild = child
			}
			currentAbsoluteChild = child
			child.nextChild = nil
			continue
		}

		if !IsUndefined(child.style.flexBasis) && !IsUndefined(availableInnerMainDim) {
			child.layout.computedFlexBasis = math.Max(child.style.flexBasis, child.paddingAndBorderAxis(mainAxis))
		} else if isMainAxisRow && child.isStyleDimDefined(FlexDirectionRow) {
			// The width is definite, so use it as the flex basis.
			child.layout.computedFlexBasis = math.Max(child.style.dimensions[DimensionWidth],
				child.paddingAndBorderAxis(FlexDirectionRow))
		} else if !isMainAxisRow && child.isStyleDimDefined(FlexDirectionColumn) {
			child.layout.computedFlexBasis = math.Max(child.style.dimensions[DimensionHeight],
				child.paddingAndBorderAxis(FlexDirectionColumn))
		} else {
			// Compute the flex basis by measuring the child.
			childWidth := Undefined
			childHeight := Undefined
			childWidthMeasureMode := MeasureModeUndefined
			childHeightMeasureMode := MeasureModeUndefined

			if child.isStyleDimDefined(FlexDirectionRow) {
				childWidth = child.style.dimensions[DimensionWidth] + child.marginAxis(FlexDirectionRow)
				childWidthMeasureMode = MeasureModeExactly
			}
			if child.isStyleDimDefined(FlexDirectionColumn) {
				childHeight = child.style.dimensions[DimensionHeight] + child.marginAxis(FlexDirectionColumn)
				childHeightMeasureMode = MeasureModeExactly
			}

			// Size the child at most to the available inner dimension. A
			// scrolling container doesn't constrain its cross axis.
			if IsUndefined(childWidth) && !IsUndefined(availableInnerWidth) &&
				!(n.style.overflow == OverflowScroll && !isMainAxisRow) {
				childWidth = availableInnerWidth
				childWidthMeasureMode = MeasureModeAtMost
			}
			if IsUndefined(childHeight) && !IsUndefined(availableInnerHeight) &&
				!(n.style.overflow == OverflowScroll && isMainAxisRow) {
				childHeight = availableInnerHeight
				childHeightMeasureMode = MeasureModeAtMost
			}

			// A stretched child with an exactly-sized parent cross axis is
			// sized exactly to the available inner cross dimension.
			if !isMainAxisRow && !IsUndefined(availableInnerWidth) &&
				!child.isStyleDimDefined(FlexDirectionRow) &&
				widthMeasureMode == MeasureModeExactly &&
				n.alignItem(child) == AlignStretch {
				childWidth = availableInnerWidth
				childWidthMeasureMode = MeasureModeExactly
			}
			if isMainAxisRow && !IsUndefined(availableInnerHeight) &&
				!child.isStyleDimDefined(FlexDirectionColumn) &&
				heightMeasureMode == MeasureModeExactly &&
				n.alignItem(child) == AlignStretch {
				childHeight = availableInnerHeight
				childHeightMeasureMode = MeasureModeExactly
			}

			layoutNodeInternal(child, childWidth, childHeight, direction,
				childWidthMeasureMode, childHeightMeasureMode, false, "measure")

			basis := child.layout.measuredDimensions[DimensionHeight]
			if isMainAxisRow {
				basis = child.layout.measuredDimensions[DimensionWidth]
			}
			child.layout.computedFlexBasis = math.Max(basis, child.paddingAndBorderAxis(mainAxis))
		}
	}

	startOfLineIndex := 0
	endOfLineIndex := 0

	lineCount := 0

	// Accumulated cross dimensions of all lines so far.
	totalLineCrossDim := 0.0

	// Max main dimension of all the lines.
	maxLineMainDim := 0.0

	for endOfLineIndex < childCount {
		// Number of items on the current line; may differ from the index
		// span because absolute children are skipped.
		itemsOnLine := 0

		// Accumulated dimensions and margins of the children on the line,
		// used to compute the remaining space for flexible children.
		sizeConsumedOnCurrentLine := 0.0

		totalFlexGrowFactors := 0.0
		totalFlexShrinkScaledFactors := 0.0

		// Scratch list of the children taking part in flex on this line.
		var firstRelativeChild *Node
		var currentRelativeChild *Node

		// Add items to the current line until it's full or we run out.
		for i := startOfLineIndex; i < childCount; i++ {
			child := n.children[i]
			child.lineIndex = lineCount

			if child.style.positionType != PositionTypeAbsolute {
				outerFlexBasis := child.layout.computedFlexBasis + child.marginAxis(mainAxis)

				// If this item would push a wrapping line over the available
				// size, the line ends before it.
				if sizeConsumedOnCurrentLine+outerFlexBasis > availableInnerMainDim &&
					isNodeFlexWrap && itemsOnLine > 0 {
					break
				}

				sizeConsumedOnCurrentLine += outerFlexBasis
				itemsOnLine++

				if child.isFlex() {
					totalFlexGrowFactors += child.style.flexGrow

					// Unlike the grow factor, the shrink factor is scaled
					// relative to the child dimension.
					totalFlexShrinkScaledFactors += -child.style.flexShrink * child.layout.computedFlexBasis
				}

				if firstRelativeChild == nil {
					firstRelativeChild = child
				}
				if currentRelativeChild != nil {
					currentRelativeChild.nextChild = child
				}
				currentRelativeChild = child
				child.nextChild = nil
			}

			endOfLineIndex++
		}

		// If the cross size is already fixed and we're only measuring, the
		// flex step can be skipped entirely.
		canSkipFlex := !performLayout && measureModeCrossDim == MeasureModeExactly

		// Main-axis position is controlled by the space before the first
		// element and the space between each pair.
		leadingMainDim := 0.0
		betweenMainDim := 0.0

		// Remaining space to be allocated to flexible children. When the
		// main dimension is indefinite the node sizes to its content, so
		// there is nothing to distribute, unless the line consumed a
		// negative size, in which case that deficit is the free space.
		remainingFreeSpace := 0.0
		if !IsUndefined(availableInnerMainDim) {
			remainingFreeSpace = availableInnerMainDim - sizeConsumedOnCurrentLine
		} else if sizeConsumedOnCurrentLine < 0 {
			remainingFreeSpace = -sizeConsumedOnCurrentLine
		}

		originalRemainingFreeSpace := remainingFreeSpace
		deltaFreeSpace := 0.0

		if !canSkipFlex {
			// Two passes over the flex items. The first finds the items
			// whose min/max constraints trigger, freezes them at their
			// bound, and removes their size and factor from the remaining
			// space. The second distributes the remaining space among the
			// unclamped items.
			deltaFlexShrinkScaledFactors := 0.0
			deltaFlexGrowFactors := 0.0

			for child := firstRelativeChild; child != nil; child = child.nextChild {
				childFlexBasis := child.layout.computedFlexBasis

				if remainingFreeSpace < 0 {
					flexShrinkScaledFactor := -child.style.flexShrink * childFlexBasis
					if flexShrinkScaledFactor != 0 {
						baseMainSize := childFlexBasis +
							remainingFreeSpace/totalFlexShrinkScaledFactors*flexShrinkScaledFactor
						boundMainSize := child.boundAxis(mainAxis, baseMainSize)
						if baseMainSize != boundMainSize {
							// Excluding this item's size and factor here
							// makes its min/max trigger identically in the
							// second pass.
							deltaFreeSpace -= boundMainSize - childFlexBasis
							deltaFlexShrinkScaledFactors -= flexShrinkScaledFactor
						}
					}
				} else if remainingFreeSpace > 0 {
					flexGrowFactor := child.style.flexGrow
					if flexGrowFactor != 0 {
						baseMainSize := childFlexBasis +
							remainingFreeSpace/totalFlexGrowFactors*flexGrowFactor
						boundMainSize := child.boundAxis(mainAxis, baseMainSize)
						if baseMainSize != boundMainSize {
							deltaFreeSpace -= boundMainSize - childFlexBasis
							deltaFlexGrowFactors -= flexGrowFactor
						}
					}
				}
			}

			totalFlexShrinkScaledFactors += deltaFlexShrinkScaledFactors
			totalFlexGrowFactors += deltaFlexGrowFactors
			remainingFreeSpace += deltaFreeSpace

			// Second pass: resolve the sizes of the flexible children and
			// lay them out with their main size fixed.
			deltaFreeSpace = 0
			for child := firstRelativeChild; child != nil; child = child.nextChild {
				childFlexBasis := child.layout.computedFlexBasis
				updatedMainSize := childFlexBasis

				if remainingFreeSpace < 0 {
					flexShrinkScaledFactor := -child.style.flexShrink * childFlexBasis
					if flexShrinkScaledFactor != 0 {
						updatedMainSize = child.boundAxis(mainAxis, childFlexBasis+
							remainingFreeSpace/totalFlexShrinkScaledFactors*flexShrinkScaledFactor)
					}
				} else if remainingFreeSpace > 0 {
					flexGrowFactor := child.style.flexGrow
					if flexGrowFactor != 0 {
						updatedMainSize = child.boundAxis(mainAxis, childFlexBasis+
							remainingFreeSpace/totalFlexGrowFactors*flexGrowFactor)
					}
				}

				deltaFreeSpace -= updatedMainSize - childFlexBasis

				var childWidth, childHeight float64
				var childWidthMeasureMode, childHeightMeasureMode MeasureMode

				if isMainAxisRow {
					childWidth = updatedMainSize + child.marginAxis(FlexDirectionRow)
					childWidthMeasureMode = MeasureModeExactly

					if !IsUndefined(availableInnerCrossDim) &&
						!child.isStyleDimDefined(FlexDirectionColumn) &&
						heightMeasureMode == MeasureModeExactly &&
						n.alignItem(child) == AlignStretch {
						childHeight = availableInnerCrossDim
						childHeightMeasureMode = MeasureModeExactly
					} else if !child.isStyleDimDefined(FlexDirectionColumn) {
						childHeight = availableInnerCrossDim
						childHeightMeasureMode = MeasureModeAtMost
						if IsUndefined(childHeight) {
							childHeightMeasureMode = MeasureModeUndefined
						}
					} else {
						childHeight = child.style.dimensions[DimensionHeight] + child.marginAxis(FlexDirectionColumn)
						childHeightMeasureMode = MeasureModeExactly
					}
				} else {
					childHeight = updatedMainSize + child.marginAxis(FlexDirectionColumn)
					childHeightMeasureMode = MeasureModeExactly

					if !IsUndefined(availableInnerCrossDim) &&
						!child.isStyleDimDefined(FlexDirectionRow) &&
						widthMeasureMode == MeasureModeExactly &&
						n.alignItem(child) == AlignStretch {
						childWidth = availableInnerCrossDim
						childWidthMeasureMode = MeasureModeExactly
					} else if !child.isStyleDimDefined(FlexDirectionRow) {
						childWidth = availableInnerCrossDim
						childWidthMeasureMode = MeasureModeAtMost
						if IsUndefined(childWidth) {
							childWidthMeasureMode = MeasureModeUndefined
						}
					} else {
						childWidth = child.style.dimensions[DimensionWidth] + child.marginAxis(FlexDirectionRow)
						childWidthMeasureMode = MeasureModeExactly
					}
				}

				requiresStretchLayout := !child.isStyleDimDefined(crossAxis) &&
					n.alignItem(child) == AlignStretch

				// Recursively lay out the child with its updated main size.
				// Stretched children get a dedicated pass later.
				layoutNodeInternal(child, childWidth, childHeight, direction,
					childWidthMeasureMode, childHeightMeasureMode,
					performLayout && !requiresStretchLayout, "flex")
			}
		}

		remainingFreeSpace = originalRemainingFreeSpace + deltaFreeSpace

		// Main-axis justification and cross-axis size determination.

		// With an at-most constraint the container shrinks around its
		// content, so leftover space is only kept up to the main-axis
		// minimum dimension.
		if measureModeMainDim == MeasureModeAtMost && remainingFreeSpace > 0 {
			minMain := n.style.minDimensions[dim[mainAxis]]
			if !IsUndefined(minMain) && minMain >= 0 {
				remainingFreeSpace = math.Max(0, minMain-(availableInnerMainDim-remainingFreeSpace))
			} else {
				remainingFreeSpace = 0
			}
		}

		switch justifyContent {
		case JustifyCenter:
			leadingMainDim = remainingFreeSpace / 2
		case JustifyFlexEnd:
			leadingMainDim = remainingFreeSpace
		case JustifySpaceBetween:
			if itemsOnLine > 1 {
				betweenMainDim = math.Max(remainingFreeSpace, 0) / float64(itemsOnLine-1)
			}
		case JustifySpaceAround:
			if itemsOnLine > 0 {
				betweenMainDim = remainingFreeSpace / float64(itemsOnLine)
				leadingMainDim = betweenMainDim / 2
			}
		}

		mainDim := leadingPaddingAndBorderMain + leadingMainDim
		crossDim := 0.0

		for i := startOfLineIndex; i < endOfLineIndex; i++ {
			child := n.children[i]

			if child.style.positionType == PositionTypeAbsolute &&
				child.isLeadingPosDefined(mainAxis) {
				if performLayout {
					// An absolute child with a leading main position sits at
					// that offset from the parent's border box.
					child.layout.position[pos[mainAxis]] = child.leadingPosition(mainAxis) +
						n.leadingBorder(mainAxis) + child.leadingMargin(mainAxis)
				}
				continue
			}

			if performLayout {
				// Relative children, and absolute ones without an explicit
				// main position, advance with the accumulated offset.
				child.layout.position[pos[mainAxis]] += mainDim
			}

			if child.style.positionType == PositionTypeRelative {
				if canSkipFlex {
					// The flex step was skipped, so measured dimensions are
					// stale; advance using the flex basis instead.
					mainDim += betweenMainDim + child.marginAxis(mainAxis) + child.layout.computedFlexBasis
					crossDim = availableInnerCrossDim
				} else {
					mainDim += betweenMainDim + child.dimWithMargin(mainAxis)

					// There is only one element per line in the cross
					// dimension, so the line's cross size is the max.
					crossDim = math.Max(crossDim, child.dimWithMargin(crossAxis))
				}
			}
		}

		mainDim += trailingPaddingAndBorderMain

		containerCrossAxis := availableInnerCrossDim
		if measureModeCrossDim == MeasureModeUndefined || measureModeCrossDim == MeasureModeAtMost {
			// Compute the cross size from the max cross dimension of the
			// children.
			containerCrossAxis = n.boundAxis(crossAxis, crossDim+paddingAndBorderAxisCross) -
				paddingAndBorderAxisCross

			if measureModeCrossDim == MeasureModeAtMost {
				containerCrossAxis = math.Min(containerCrossAxis, availableInnerCrossDim)
			}
		}

		// Without wrapping, an exactly-sized cross axis defines the line.
		if !isNodeFlexWrap && measureModeCrossDim == MeasureModeExactly {
			crossDim = availableInnerCrossDim
		}

		// Clamp to the min/max size specified on the container.
		crossDim = n.boundAxis(crossAxis, crossDim+paddingAndBorderAxisCross) - paddingAndBorderAxisCross

		// Cross-axis alignment; skipped when only measuring.
		if performLayout {
			for i := startOfLineIndex; i < endOfLineIndex; i++ {
				child := n.children[i]

				if child.style.positionType == PositionTypeAbsolute {
					// An absolute child with a leading cross position sits at
					// that offset; otherwise it defaults to the content edge.
					if child.isLeadingPosDefined(crossAxis) {
						child.layout.position[pos[crossAxis]] = child.leadingPosition(crossAxis) +
							n.leadingBorder(crossAxis) + child.leadingMargin(crossAxis)
					} else {
						child.layout.position[pos[crossAxis]] = leadingPaddingAndBorderCross +
							child.leadingMargin(crossAxis)
					}
					continue
				}

				leadingCrossDim := leadingPaddingAndBorderCross

				// Relative children use alignItems of the parent unless
				// overridden by their own alignSelf.
				alignItem := n.alignItem(child)

				if alignItem == AlignStretch {
					// A stretched child is laid out once more with the
					// line's cross size forced on it.
					childWidth := child.layout.measuredDimensions[DimensionWidth] + child.marginAxis(FlexDirectionRow)
					childHeight := child.layout.measuredDimensions[DimensionHeight] + child.marginAxis(FlexDirectionColumn)
					isCrossSizeDefinite := false

					if isMainAxisRow {
						isCrossSizeDefinite = child.isStyleDimDefined(FlexDirectionColumn)
						childHeight = crossDim
					} else {
						isCrossSizeDefinite = child.isStyleDimDefined(FlexDirectionRow)
						childWidth = crossDim
					}

					// A child with a definite cross size doesn't stretch.
					if !isCrossSizeDefinite {
						childWidthMeasureMode := MeasureModeExactly
						if IsUndefined(childWidth) {
							childWidthMeasureMode = MeasureModeUndefined
						}
						childHeightMeasureMode := MeasureModeExactly
						if IsUndefined(childHeight) {
							childHeightMeasureMode = MeasureModeUndefined
						}
						layoutNodeInternal(child, childWidth, childHeight, direction,
							childWidthMeasureMode, childHeightMeasureMode, true, "stretch")
					}
				} else if alignItem != AlignFlexStart {
					remainingCrossDim := containerCrossAxis - child.dimWithMargin(crossAxis)

					if alignItem == AlignCenter {
						leadingCrossDim += remainingCrossDim / 2
					} else {
						leadingCrossDim += remainingCrossDim
					}
				}

				child.layout.position[pos[crossAxis]] += totalLineCrossDim + leadingCrossDim
			}
		}

		totalLineCrossDim += crossDim
		maxLineMainDim = math.Max(maxLineMainDim, mainDim)

		lineCount++
		startOfLineIndex = endOfLineIndex
	}

	// Multi-line content alignment.
	if lineCount > 1 && performLayout && !IsUndefined(availableInnerCrossDim) {
		remainingAlignContentDim := availableInnerCrossDim - totalLineCrossDim

		crossDimLead := 0.0
		currentLead := leadingPaddingAndBorderCross

		switch n.style.alignContent {
		case AlignFlexEnd:
			currentLead += remainingAlignContentDim
		case AlignCenter:
			currentLead += remainingAlignContentDim / 2
		case AlignStretch:
			if availableInnerCrossDim > totalLineCrossDim {
				crossDimLead = remainingAlignContentDim / float64(lineCount)
			}
		}

		endIndex := 0
		for i := 0; i < lineCount; i++ {
			startIndex := endIndex

			// Find the line's span and its tallest child.
			lineHeight := 0.0
			var ii int
			for ii = startIndex; ii < childCount; ii++ {
				child := n.children[ii]
				if child.style.positionType != PositionTypeRelative {
					continue
				}
				if child.lineIndex != i {
					break
				}
				if child.isLayoutDimDefined(crossAxis) {
					lineHeight = math.Max(lineHeight,
						child.layout.measuredDimensions[dim[crossAxis]]+child.marginAxis(crossAxis))
				}
			}
			endIndex = ii
			lineHeight += crossDimLead

			for ii = startIndex; ii < endIndex; ii++ {
				child := n.children[ii]
				if child.style.positionType != PositionTypeRelative {
					continue
				}

				switch n.alignItem(child) {
				case AlignFlexStart:
					child.layout.position[pos[crossAxis]] = currentLead + child.leadingMargin(crossAxis)
				case AlignFlexEnd:
					child.layout.position[pos[crossAxis]] = currentLead + lineHeight -
						child.trailingMargin(crossAxis) -
						child.layout.measuredDimensions[dim[crossAxis]]
				case AlignCenter:
					childCross := child.layout.measuredDimensions[dim[crossAxis]]
					child.layout.position[pos[crossAxis]] = currentLead + (lineHeight-childCross)/2
				case AlignStretch:
					child.layout.position[pos[crossAxis]] = currentLead + child.leadingMargin(crossAxis)
				}
			}

			currentLead += lineHeight
		}
	}

	// Final container dimensions.
	n.layout.measuredDimensions[DimensionWidth] = n.boundAxis(FlexDirectionRow, availableWidth-marginAxisRow)
	n.layout.measuredDimensions[DimensionHeight] = n.boundAxis(FlexDirectionColumn, availableHeight-marginAxisColumn)

	// If the caller didn't constrain the main or cross axis, size the node
	// from its content.
	if measureModeMainDim == MeasureModeUndefined {
		n.layout.measuredDimensions[dim[mainAxis]] = n.boundAxis(mainAxis, maxLineMainDim)
	} else if measureModeMainDim == MeasureModeAtMost {
		n.layout.measuredDimensions[dim[mainAxis]] = math.Max(
			math.Min(availableInnerMainDim+paddingAndBorderAxisMain,
				n.boundAxisWithinMinAndMax(mainAxis, maxLineMainDim)),
			paddingAndBorderAxisMain)
	}

	if measureModeCrossDim == MeasureModeUndefined {
		n.layout.measuredDimensions[dim[crossAxis]] = n.boundAxis(crossAxis,
			totalLineCrossDim+paddingAndBorderAxisCross)
	} else if measureModeCrossDim == MeasureModeAtMost {
		n.layout.measuredDimensions[dim[crossAxis]] = math.Max(
			math.Min(availableInnerCrossDim+paddingAndBorderAxisCross,
				n.boundAxisWithinMinAndMax(crossAxis, totalLineCrossDim+paddingAndBorderAxisCross)),
			paddingAndBorderAxisCross)
	}

	// Size and position the absolute children against the now-known
	// container bounds.
	for child := firstAbsoluteChild; child != nil; child = child.nextChild {
		if !performLayout {
			continue
		}

		childWidth := Undefined
		childHeight := Undefined

		if child.isStyleDimDefined(FlexDirectionRow) {
			childWidth = child.style.dimensions[DimensionWidth] + child.marginAxis(FlexDirectionRow)
		} else if child.isLeadingPosDefined(FlexDirectionRow) && child.isTrailingPosDefined(FlexDirectionRow) {
			// Offsets on both edges imply the width.
			childWidth = n.layout.measuredDimensions[DimensionWidth] -
				(n.leadingBorder(FlexDirectionRow) + n.trailingBorder(FlexDirectionRow)) -
				(child.leadingPosition(FlexDirectionRow) + child.trailingPosition(FlexDirectionRow))
			childWidth = child.boundAxis(FlexDirectionRow, childWidth)
		}

		if child.isStyleDimDefined(FlexDirectionColumn) {
			childHeight = child.style.dimensions[DimensionHeight] + child.marginAxis(FlexDirectionColumn)
		} else if child.isLeadingPosDefined(FlexDirectionColumn) && child.isTrailingPosDefined(FlexDirectionColumn) {
			childHeight = n.layout.measuredDimensions[DimensionHeight] -
				(n.leadingBorder(FlexDirectionColumn) + n.trailingBorder(FlexDirectionColumn)) -
				(child.leadingPosition(FlexDirectionColumn) + child.trailingPosition(FlexDirectionColumn))
			childHeight = child.boundAxis(FlexDirectionColumn, childHeight)
		}

		// One or both dimensions still unknown: measure the content.
		if IsUndefined(childWidth) || IsUndefined(childHeight) {
			childWidthMeasureMode := MeasureModeExactly
			if IsUndefined(childWidth) {
				childWidthMeasureMode = MeasureModeUndefined
			}
			childHeightMeasureMode := MeasureModeExactly
			if IsUndefined(childHeight) {
				childHeightMeasureMode = MeasureModeUndefined
			}

			// When the main axis is a column, an unconstrained width is
			// capped at the available inner width.
			if !isMainAxisRow && IsUndefined(childWidth) && !IsUndefined(availableInnerWidth) {
				childWidth = availableInnerWidth
				childWidthMeasureMode = MeasureModeAtMost
			}

			layoutNodeInternal(child, childWidth, childHeight, direction,
				childWidthMeasureMode, childHeightMeasureMode, false, "abs measure")
			childWidth = child.layout.measuredDimensions[DimensionWidth] + child.marginAxis(FlexDirectionRow)
			childHeight = child.layout.measuredDimensions[DimensionHeight] + child.marginAxis(FlexDirectionColumn)
		}

		layoutNodeInternal(child, childWidth, childHeight, direction,
			MeasureModeExactly, MeasureModeExactly, true, "abs layout")

		if child.isTrailingPosDefined(mainAxis) && !child.isLeadingPosDefined(mainAxis) {
			child.layout.position[leading[mainAxis]] = n.layout.measuredDimensions[dim[mainAxis]] -
				child.layout.measuredDimensions[dim[mainAxis]] - child.trailingPosition(mainAxis)
		}
		if child.isTrailingPosDefined(crossAxis) && !child.isLeadingPosDefined(crossAxis) {
			child.layout.position[leading[crossAxis]] = n.layout.measuredDimensions[dim[crossAxis]] -
				child.layout.measuredDimensions[dim[crossAxis]] - child.trailingPosition(crossAxis)
		}
	}

	// On reverse axes, positions are stored from the trailing edge.
	if performLayout {
		needsMainTrailingPos := isReverseDirection(mainAxis)
		needsCrossTrailingPos := isReverseDirection(crossAxis)

		if needsMainTrailingPos || needsCrossTrailingPos {
			for i := 0; i < childCount; i++ {
				child := n.children[i]

				if needsMainTrailingPos {
					setTrailingPosition(n, child, mainAxis)
				}
				if needsCrossTrailingPos {
					setTrailingPosition(n, child, crossAxis)
				}
			}
		}
	}
}
