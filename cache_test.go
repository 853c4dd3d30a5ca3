package flexlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanUseCachedMeasurement(t *testing.T) {
	cached := cachedMeasurement{
		availableWidth:    100,
		availableHeight:   50,
		widthMeasureMode:  MeasureModeAtMost,
		heightMeasureMode: MeasureModeAtMost,
		computedWidth:     80,
		computedHeight:    30,
	}

	var tests = []struct {
		name       string
		isText     bool
		availW     float64
		availH     float64
		widthMode  MeasureMode
		heightMode MeasureMode
		cached     cachedMeasurement
		want       bool
	}{
		{
			name:   "identical query",
			availW: 100, availH: 50,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cached,
			want:   true,
		},
		{
			name:   "availability differs",
			availW: 90, availH: 50,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cached,
			want:   false,
		},
		{
			name:   "exact query matching computed output",
			availW: 80, availH: 30,
			widthMode: MeasureModeExactly, heightMode: MeasureModeExactly,
			cached: cached,
			want:   true,
		},
		{
			name:   "exact query not matching computed output",
			availW: 85, availH: 30,
			widthMode: MeasureModeExactly, heightMode: MeasureModeExactly,
			cached: cached,
			want:   false,
		},
		{
			name:   "unconstrained measurement fits at-most bound",
			availW: 100, availH: 50,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cachedMeasurement{
				availableWidth:    Undefined,
				availableHeight:   Undefined,
				widthMeasureMode:  MeasureModeUndefined,
				heightMeasureMode: MeasureModeUndefined,
				computedWidth:     80,
				computedHeight:    30,
			},
			want: true,
		},
		{
			name:   "unconstrained measurement exceeds at-most bound",
			availW: 70, availH: 50,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cachedMeasurement{
				availableWidth:    Undefined,
				availableHeight:   Undefined,
				widthMeasureMode:  MeasureModeUndefined,
				heightMeasureMode: MeasureModeUndefined,
				computedWidth:     80,
				computedHeight:    30,
			},
			want: false,
		},
		{
			name:   "both modes undefined",
			availW: Undefined, availH: Undefined,
			widthMode: MeasureModeUndefined, heightMode: MeasureModeUndefined,
			cached: cachedMeasurement{
				availableWidth:    Undefined,
				availableHeight:   Undefined,
				widthMeasureMode:  MeasureModeUndefined,
				heightMeasureMode: MeasureModeUndefined,
				computedWidth:     80,
				computedHeight:    30,
			},
			want: true,
		},
		{
			name:   "text node same width unrestricted height",
			isText: true,
			availW: 100, availH: Undefined,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeUndefined,
			cached: cached,
			want:   true,
		},
		{
			name:   "text node same width looser height bound",
			isText: true,
			availW: 100, availH: 40,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cached,
			want:   true,
		},
		{
			name:   "text node same width tighter height bound",
			isText: true,
			availW: 100, availH: 25,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cached,
			want:   false,
		},
		{
			name:   "text node previously unconstrained width still fits",
			isText: true,
			availW: 90, availH: 25,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeAtMost,
			cached: cachedMeasurement{
				availableWidth:    Undefined,
				availableHeight:   50,
				widthMeasureMode:  MeasureModeUndefined,
				heightMeasureMode: MeasureModeAtMost,
				computedWidth:     80,
				computedHeight:    30,
			},
			want: true,
		},
		{
			name:   "non-text gets no text latitude",
			availW: 100, availH: Undefined,
			widthMode: MeasureModeAtMost, heightMode: MeasureModeUndefined,
			cached: cached,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := canUseCachedMeasurement(tt.isText, tt.availW, tt.availH, 0, 0,
				tt.widthMode, tt.heightMode, tt.cached)
			assert.Equal(t, tt.want, got)
		})
	}
}

func measureCounter(count *int, size Size) MeasureFunc {
	return func(_ any, _ float64, _ MeasureMode, _ float64, _ MeasureMode) Size {
		*count++
		return size
	}
}

func TestMeasureCachedAcrossLayouts(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)

	count := 0
	leaf := NewNode()
	leaf.SetMeasureFunc(measureCounter(&count, Size{Width: 30, Height: 15}))
	root.InsertChild(leaf, 0)

	CalculateLayout(root, 200, 100, DirectionLTR)
	require.Equal(t, 1, count)

	// A clean tree under identical constraints doesn't re-measure.
	CalculateLayout(root, 200, 100, DirectionLTR)
	assert.Equal(t, 1, count)

	// Dirtying the leaf invalidates its cache.
	leaf.MarkDirty()
	CalculateLayout(root, 200, 100, DirectionLTR)
	assert.Equal(t, 2, count)
}

func TestMeasurementRingWraps(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)

	count := 0
	leaf := NewNode()
	leaf.SetMeasureFunc(measureCounter(&count, Size{Width: 30, Height: 15}))
	root.InsertChild(leaf, 0)

	// Each distinct constraint adds one measurement to the ring.
	for i := 0; i < 20; i++ {
		CalculateLayout(root, float64(1000+i), 100, DirectionLTR)
	}

	assert.Equal(t, 4, leaf.layout.nextCachedMeasurementsIndex)
	assert.Equal(t, 20, count)
}

func TestCacheInvalidatedOnDirty(t *testing.T) {
	root := NewNode()
	root.SetFlexDirection(FlexDirectionRow)
	root.SetAlignItems(AlignFlexStart)

	count := 0
	leaf := NewNode()
	leaf.SetMeasureFunc(measureCounter(&count, Size{Width: 30, Height: 15}))
	root.InsertChild(leaf, 0)

	CalculateLayout(root, 200, 100, DirectionLTR)
	require.Greater(t, leaf.layout.nextCachedMeasurementsIndex, 0)

	leaf.MarkDirty()
	CalculateLayout(root, 200, 100, DirectionLTR)

	// The ring was flushed before the fresh measurement was stored.
	assert.Equal(t, 1, leaf.layout.nextCachedMeasurementsIndex)
}
