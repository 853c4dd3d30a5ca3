package flexlay

// Style holds the input attributes of a node. Numeric fields use Undefined
// as the absence marker; enum fields carry their CSS defaults.
type Style struct {
	direction      Direction
	flexDirection  FlexDirection
	justifyContent Justify
	alignContent   Align
	alignItems     Align
	alignSelf      Align
	positionType   PositionType
	flexWrap       Wrap
	overflow       Overflow

	flexGrow   float64
	flexShrink float64
	flexBasis  float64

	margin   [edgeCount]float64
	position [edgeCount]float64
	padding  [edgeCount]float64
	border   [edgeCount]float64

	dimensions    [2]float64
	minDimensions [2]float64
	maxDimensions [2]float64
}

func newStyle() Style {
	s := Style{
		direction:      DirectionInherit,
		flexDirection:  FlexDirectionColumn,
		justifyContent: JustifyFlexStart,
		alignContent:   AlignFlexStart,
		alignItems:     AlignStretch,
		alignSelf:      AlignAuto,
		positionType:   PositionTypeRelative,
		flexWrap:       WrapNoWrap,
		overflow:       OverflowVisible,
		flexBasis:      Undefined,
	}
	for i := 0; i < edgeCount; i++ {
		s.margin[i] = Undefined
		s.position[i] = Undefined
		s.padding[i] = Undefined
		s.border[i] = Undefined
	}
	for i := 0; i < 2; i++ {
		s.dimensions[i] = Undefined
		s.minDimensions[i] = Undefined
		s.maxDimensions[i] = Undefined
	}
	return s
}
