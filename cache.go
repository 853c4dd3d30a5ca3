package flexlay

// maxCachedResults bounds the per-node measurement ring. The layout result
// lives in a dedicated slot outside the ring.
const maxCachedResults = 16

type cachedMeasurement struct {
	availableWidth    float64
	availableHeight   float64
	widthMeasureMode  MeasureMode
	heightMeasureMode MeasureMode

	computedWidth  float64
	computedHeight float64
}

// canUseCachedMeasurement decides whether a prior measurement satisfies a
// new query. For each axis independently the cached entry must be either
// the same query (modes match and availability equal, or both modes
// undefined) or still valid for the new constraint (an unconstrained
// measurement that fits an at-most bound, or an exact bound the output
// already matches). Text nodes get extra latitude because their measure
// output only depends on the width constraint once it fits.
//
// This is a pure predicate: it never narrows or rewrites the cached entry.
func canUseCachedMeasurement(
	isTextNode bool,
	availableWidth, availableHeight float64,
	marginRow, marginColumn float64,
	widthMeasureMode, heightMeasureMode MeasureMode,
	cached cachedMeasurement,
) bool {
	isHeightSame := (cached.heightMeasureMode == MeasureModeUndefined && heightMeasureMode == MeasureModeUndefined) ||
		(cached.heightMeasureMode == heightMeasureMode && valueEqual(cached.availableHeight, availableHeight))

	isWidthSame := (cached.widthMeasureMode == MeasureModeUndefined && widthMeasureMode == MeasureModeUndefined) ||
		(cached.widthMeasureMode == widthMeasureMode && valueEqual(cached.availableWidth, availableWidth))

	if isHeightSame && isWidthSame {
		return true
	}

	isHeightValid := (cached.heightMeasureMode == MeasureModeUndefined &&
		heightMeasureMode == MeasureModeAtMost &&
		cached.computedHeight <= availableHeight-marginColumn) ||
		(heightMeasureMode == MeasureModeExactly &&
			valueEqual(cached.computedHeight, availableHeight-marginColumn))

	if isWidthSame && isHeightValid {
		return true
	}

	isWidthValid := (cached.widthMeasureMode == MeasureModeUndefined &&
		widthMeasureMode == MeasureModeAtMost &&
		cached.computedWidth <= availableWidth-marginRow) ||
		(widthMeasureMode == MeasureModeExactly &&
			valueEqual(cached.computedWidth, availableWidth-marginRow))

	if isHeightSame && isWidthValid {
		return true
	}

	if isHeightValid && isWidthValid {
		return true
	}

	if isTextNode {
		if isWidthSame {
			if heightMeasureMode == MeasureModeUndefined {
				// Width is the same and height is not restricted.
				return true
			}
			if heightMeasureMode == MeasureModeAtMost &&
				cached.computedHeight < availableHeight-marginColumn {
				// Height restriction is looser than the cached height.
				return true
			}
		}
		if cached.widthMeasureMode == MeasureModeUndefined {
			if widthMeasureMode == MeasureModeUndefined ||
				(widthMeasureMode == MeasureModeAtMost &&
					cached.computedWidth <= availableWidth-marginRow) {
				// Text measured without a width restriction fits the new,
				// larger restriction; the measurement still holds.
				return true
			}
		}
	}

	return false
}
