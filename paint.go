package flexlay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kemari/flexlay/geo"
	"github.com/kemari/flexlay/internal/graphic"
)

var debugColors = []color.Color{
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xff, 0xff},
	color.RGBA{0xff, 0xff, 0x00, 0xff},
}

// Paint draws the border box of every node in a laid-out tree onto screen as
// a colored outline, cycling colors by depth. It is a debugging aid; call it
// after CalculateLayout.
func Paint(screen *ebiten.Image, root *Node) {
	paintNode(screen, root, geo.Pt(0, 0), 0)
}

// Frame returns the node's border box relative to the tree root, by
// accumulating the offsets of its ancestors.
func Frame(n *Node) geo.Rectangle {
	offset := geo.Pt(0, 0)
	for p := n.parent; p != nil; p = p.parent {
		offset.X += p.layout.position[EdgeLeft]
		offset.Y += p.layout.position[EdgeTop]
	}
	return nodeBounds(n).Add(offset)
}

func nodeBounds(n *Node) geo.Rectangle {
	x := n.layout.position[EdgeLeft]
	y := n.layout.position[EdgeTop]
	return geo.Rect(x, y, x+n.layout.dimensions[DimensionWidth], y+n.layout.dimensions[DimensionHeight])
}

func paintNode(screen *ebiten.Image, n *Node, offset geo.Point, depth int) {
	bounds := nodeBounds(n).Add(offset)

	graphic.DrawRect(screen, &graphic.DrawRectOpts{
		Rect:        bounds,
		Color:       debugColors[depth%len(debugColors)],
		StrokeWidth: 1,
	})

	for _, child := range n.children {
		paintNode(screen, child, bounds.Min, depth+1)
	}
}
