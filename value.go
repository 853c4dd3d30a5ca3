package flexlay

import "math"

// Undefined is the sentinel for "not set". All numeric style fields default
// to it. Never compare against it with ==; use IsUndefined.
var Undefined = math.NaN()

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// valueEqual is the engine's float comparator: two undefined values are
// equal, and defined values compare within a small tolerance.
func valueEqual(a, b float64) bool {
	if IsUndefined(a) {
		return IsUndefined(b)
	}
	return math.Abs(a-b) < 0.0001
}

// computedEdgeValue resolves a concrete edge against the shorthand slots:
// per-edge, then vertical/horizontal, then all. Start and end have no
// default; every other edge falls back to defaultValue.
func computedEdgeValue(edges *[edgeCount]float64, edge Edge, defaultValue float64) float64 {
	assertCond(edge <= EdgeEnd, "cannot get computed value of multi-edge shorthands")

	if !IsUndefined(edges[edge]) {
		return edges[edge]
	}
	if (edge == EdgeTop || edge == EdgeBottom) && !IsUndefined(edges[EdgeVertical]) {
		return edges[EdgeVertical]
	}
	if (edge == EdgeLeft || edge == EdgeRight || edge == EdgeStart || edge == EdgeEnd) &&
		!IsUndefined(edges[EdgeHorizontal]) {
		return edges[EdgeHorizontal]
	}
	if !IsUndefined(edges[EdgeAll]) {
		return edges[EdgeAll]
	}
	if edge == EdgeStart || edge == EdgeEnd {
		return Undefined
	}
	return defaultValue
}
