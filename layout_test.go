package flexlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rect struct {
	x, y, w, h float64
}

func childRect(n *Node) rect {
	return rect{n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight()}
}

func TestRowEqualGrow(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	for i := 0; i < 3; i++ {
		child := NewNode()
		child.SetFlexGrow(1)
		child.SetFlexBasis(0)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 300, 100, DirectionLTR)

	assert.Equal(t, rect{0, 0, 100, 100}, childRect(root.Child(0)))
	assert.Equal(t, rect{100, 0, 100, 100}, childRect(root.Child(1)))
	assert.Equal(t, rect{200, 0, 100, 100}, childRect(root.Child(2)))
}

func TestColumnSpaceBetween(t *testing.T) {
	root := NewNode()
	root.SetJustifyContent(JustifySpaceBetween)

	for i := 0; i < 2; i++ {
		child := NewNode()
		child.SetHeight(20)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 100, 100, DirectionLTR)

	assert.Equal(t, 0.0, root.Child(0).LayoutTop())
	assert.Equal(t, 80.0, root.Child(1).LayoutTop())
}

func TestRowAlignItemsCenter(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignCenter)

	child := NewNode()
	child.SetWidth(40)
	child.SetHeight(40)
	root.InsertChild(child, 0)

	CalculateLayout(root, 200, 100, DirectionLTR)

	assert.Equal(t, rect{0, 30, 40, 40}, childRect(child))
}

func TestRowWrap(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetWrap(WrapWrap)

	for i := 0; i < 3; i++ {
		child := NewNode()
		child.SetWidth(60)
		child.SetHeight(20)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 100, Undefined, DirectionLTR)

	// (0,0)
	// ┌─────────────────────┐
	// │box1 (60x20)         │
	// ├──────────────┐      │
	// │box2 (60x20)  │      │
	// ├──────────────┤      │
	// │box3 (60x20)  │      │
	// └──────────────┴──────┘ width 100, height 60
	assert.Equal(t, rect{0, 0, 60, 20}, childRect(root.Child(0)))
	assert.Equal(t, rect{0, 20, 60, 20}, childRect(root.Child(1)))
	assert.Equal(t, rect{0, 40, 60, 20}, childRect(root.Child(2)))

	assert.Equal(t, 0, root.Child(0).LineIndex())
	assert.Equal(t, 1, root.Child(1).LineIndex())
	assert.Equal(t, 2, root.Child(2).LineIndex())

	assert.Equal(t, 60.0, root.LayoutHeight())
}

func TestRowRTL(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	for i := 0; i < 2; i++ {
		child := NewNode()
		child.SetWidth(50)
		child.SetHeight(50)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 200, 50, DirectionRTL)

	// The trailing edge leads under RTL.
	assert.Equal(t, 150.0, root.Child(0).LayoutLeft())
	assert.Equal(t, 100.0, root.Child(1).LayoutLeft())
}

func TestAbsoluteChild(t *testing.T) {
	root := NewNode()
	root.SetWidth(200)
	root.SetHeight(200)

	child := NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeLeft, 10)
	child.SetPosition(EdgeTop, 20)
	child.SetWidth(30)
	child.SetHeight(40)
	root.InsertChild(child, 0)

	CalculateLayout(root, Undefined, Undefined, DirectionLTR)

	assert.Equal(t, rect{10, 20, 30, 40}, childRect(child))

	// The absolute child doesn't affect the parent size.
	assert.Equal(t, 200.0, root.LayoutWidth())
	assert.Equal(t, 200.0, root.LayoutHeight())
}

func TestAbsoluteChildTrailingOffsets(t *testing.T) {
	root := NewNode()
	root.SetWidth(200)
	root.SetHeight(200)

	child := NewNode()
	child.SetPositionType(PositionTypeAbsolute)
	child.SetPosition(EdgeRight, 10)
	child.SetPosition(EdgeBottom, 20)
	child.SetWidth(30)
	child.SetHeight(40)
	root.InsertChild(child, 0)

	CalculateLayout(root, Undefined, Undefined, DirectionLTR)

	assert.Equal(t, rect{160, 140, 30, 40}, childRect(child))
}

func TestShrink(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	for i := 0; i < 2; i++ {
		child := NewNode()
		child.SetFlexBasis(80)
		child.SetFlexShrink(1)
		child.SetHeight(20)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 100, 100, DirectionLTR)

	assert.Equal(t, 50.0, root.Child(0).LayoutWidth())
	assert.Equal(t, 50.0, root.Child(1).LayoutWidth())
	assert.Equal(t, 50.0, root.Child(1).LayoutLeft())
}

func TestGrowWithMaxClamp(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	clamped := NewNode()
	clamped.SetFlexGrow(1)
	clamped.SetFlexBasis(0)
	clamped.SetMaxWidth(50)
	root.InsertChild(clamped, 0)

	flexible := NewNode()
	flexible.SetFlexGrow(1)
	flexible.SetFlexBasis(0)
	root.InsertChild(flexible, 1)

	CalculateLayout(root, 300, 100, DirectionLTR)

	// The clamped item frees its share for the flexible one.
	assert.Equal(t, 50.0, clamped.LayoutWidth())
	assert.Equal(t, 250.0, flexible.LayoutWidth())
}

func TestJustify(t *testing.T) {
	var tests = []struct {
		name    string
		justify Justify
		want    []float64
	}{
		{"flex-start", JustifyFlexStart, []float64{0, 20}},
		{"center", JustifyCenter, []float64{30, 50}},
		{"flex-end", JustifyFlexEnd, []float64{60, 80}},
		{"space-between", JustifySpaceBetween, []float64{0, 80}},
		{"space-around", JustifySpaceAround, []float64{15, 65}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewNode()
			root.SetFlexDirection(FlexDirectionRow)
			root.SetJustifyContent(tt.justify)

			for i := 0; i < 2; i++ {
				child := NewNode()
				child.SetWidth(20)
				child.SetHeight(20)
				root.InsertChild(child, i)
			}

			CalculateLayout(root, 100, 20, DirectionLTR)

			for i, want := range tt.want {
				assert.Equal(t, want, root.Child(i).LayoutLeft(), "child %d", i)
			}
		})
	}
}

func TestPaddingAndBorderFloor(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	child := NewNode()
	child.SetWidth(5)
	child.SetHeight(5)
	child.SetPadding(EdgeAll, 10)
	child.SetBorder(EdgeAll, 2)
	root.InsertChild(child, 0)

	CalculateLayout(root, 100, 100, DirectionLTR)

	// A box can never be smaller than its own padding and border.
	assert.Equal(t, 24.0, child.LayoutWidth())
	assert.Equal(t, 24.0, child.LayoutHeight())
}

func TestMaxDimensionClamp(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	child := NewNode()
	child.SetWidth(60)
	child.SetMaxWidth(40)
	child.SetHeight(10)
	root.InsertChild(child, 0)

	CalculateLayout(root, 100, 100, DirectionLTR)

	assert.Equal(t, 40.0, child.LayoutWidth())
}

func TestMinDimensionClamp(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	child := NewNode()
	child.SetWidth(10)
	child.SetMinWidth(30)
	child.SetHeight(10)
	root.InsertChild(child, 0)

	CalculateLayout(root, 100, 100, DirectionLTR)

	assert.Equal(t, 30.0, child.LayoutWidth())
}

func TestCleanAfterLayout(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	for i := 0; i < 3; i++ {
		child := NewNode()
		child.SetFlexGrow(1)
		child.SetFlexBasis(0)
		root.InsertChild(child, i)
		grandchild := NewNode()
		grandchild.SetHeight(10)
		child.InsertChild(grandchild, 0)
	}

	CalculateLayout(root, 300, 100, DirectionLTR)

	var check func(n *Node)
	check = func(n *Node) {
		assert.False(t, n.IsDirty())
		assert.True(t, n.HasNewLayout())
		for i := 0; i < n.ChildCount(); i++ {
			check(n.Child(i))
		}
	}
	check(root)
}

func TestLayoutIdempotent(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetPadding(EdgeAll, 5)
	for i := 0; i < 3; i++ {
		child := NewNode()
		child.SetFlexGrow(1)
		child.SetFlexBasis(0)
		child.SetMargin(EdgeAll, 2)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 300, 100, DirectionLTR)
	var first []rect
	for i := 0; i < root.ChildCount(); i++ {
		first = append(first, childRect(root.Child(i)))
	}

	CalculateLayout(root, 300, 100, DirectionLTR)
	for i := 0; i < root.ChildCount(); i++ {
		assert.Equal(t, first[i], childRect(root.Child(i)))
	}
}

func TestDirtyForcesRelayout(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	child := NewNode()
	child.SetWidth(40)
	child.SetHeight(40)
	root.InsertChild(child, 0)

	CalculateLayout(root, 200, 100, DirectionLTR)
	require.Equal(t, 40.0, child.LayoutWidth())

	child.SetWidth(60)
	assert.True(t, child.IsDirty())
	assert.True(t, root.IsDirty())

	CalculateLayout(root, 200, 100, DirectionLTR)
	assert.Equal(t, 60.0, child.LayoutWidth())
	assert.False(t, root.IsDirty())
}

func TestMarginOffsets(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	child := NewNode()
	child.SetWidth(40)
	child.SetHeight(40)
	child.SetMargin(EdgeLeft, 10)
	child.SetMargin(EdgeTop, 5)
	root.InsertChild(child, 0)

	CalculateLayout(root, 200, 100, DirectionLTR)

	assert.Equal(t, 10.0, child.LayoutLeft())
	assert.Equal(t, 5.0, child.LayoutTop())
}

func TestColumnReverse(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionColumnReverse)

	for i := 0; i < 2; i++ {
		child := NewNode()
		child.SetWidth(50)
		child.SetHeight(30)
		root.InsertChild(child, i)
	}

	CalculateLayout(root, 50, 100, DirectionLTR)

	// The first child sits at the bottom.
	assert.Equal(t, 70.0, root.Child(0).LayoutTop())
	assert.Equal(t, 40.0, root.Child(1).LayoutTop())
}

func TestNestedContainers(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)

	inner := NewNode()
	inner.SetFlexDirection(FlexDirectionRow)
	inner.SetFlexGrow(1)
	inner.SetFlexBasis(0)
	root.InsertChild(inner, 0)

	leaf := NewNode()
	leaf.SetFlexGrow(1)
	leaf.SetFlexBasis(0)
	inner.InsertChild(leaf, 0)

	CalculateLayout(root, 120, 40, DirectionLTR)

	assert.Equal(t, rect{0, 0, 120, 40}, childRect(inner))
	assert.Equal(t, rect{0, 0, 120, 40}, childRect(leaf))
}

func TestMeasureLeaf(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)

	leaf := NewNode()
	leaf.SetMeasureFunc(func(_ any, _ float64, _ MeasureMode, _ float64, _ MeasureMode) Size {
		return Size{Width: 30, Height: 15}
	})
	root.InsertChild(leaf, 0)

	CalculateLayout(root, 200, 100, DirectionLTR)

	assert.Equal(t, 30.0, leaf.LayoutWidth())
	assert.Equal(t, 15.0, leaf.LayoutHeight())
}
