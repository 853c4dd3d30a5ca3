package flexlay

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// TextMeasure returns a measure callback for a leaf text node rendered on a
// fixed-size cell grid (cellWidth x cellHeight per grapheme cluster). Words
// wrap at the available width when the width mode constrains it. Nodes using
// it should also be flagged with SetIsText so the cache heuristics apply.
func TextMeasure(text string, cellWidth, cellHeight float64) MeasureFunc {
	return func(_ any, width float64, widthMode MeasureMode, _ float64, _ MeasureMode) Size {
		lines := wrapText(text, maxClustersPerLine(width, widthMode, cellWidth))

		longest := 0
		for _, line := range lines {
			if l := clusterCount(line); l > longest {
				longest = l
			}
		}
		return Size{
			Width:  float64(longest) * cellWidth,
			Height: float64(len(lines)) * cellHeight,
		}
	}
}

func maxClustersPerLine(width float64, widthMode MeasureMode, cellWidth float64) int {
	if widthMode == MeasureModeUndefined || IsUndefined(width) || cellWidth <= 0 {
		return math.MaxInt32
	}
	max := int(width / cellWidth)
	if max < 1 {
		max = 1
	}
	return max
}

// clusterCount measures a string in grapheme clusters, which is what a cell
// grid renders, rather than runes or bytes.
func clusterCount(s string) int {
	count := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		count++
	}
	return count
}

// wrapText performs greedy word wrapping at maxClusters per line. A word
// longer than a line is kept whole on its own line.
func wrapText(text string, maxClusters int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	currentLen := clusterCount(current)
	for _, word := range words[1:] {
		wordLen := clusterCount(word)
		if currentLen+1+wordLen > maxClusters {
			lines = append(lines, current)
			current = word
			currentLen = wordLen
			continue
		}
		current += " " + word
		currentLen += 1 + wordLen
	}
	return append(lines, current)
}
