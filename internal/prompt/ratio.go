package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// canonical output sizes accepted by the image backend
const (
	SizeSquare = "1024x1024"
	SizeTall   = "1024x1792"
	SizeWide   = "1792x1024"
)

const (
	// larger side of a scaled arbitrary ratio
	scaleBase = 1024

	// hard ceiling on either dimension
	scaleMax = 2048
)

// known ratio tokens mapped to canonical sizes
var ratioSizes = map[string]string{
	"1:1":  SizeSquare,
	"4:5":  SizeTall,
	"2:3":  SizeTall,
	"3:4":  SizeTall,
	"9:16": SizeTall,
	"5:4":  SizeWide,
	"3:2":  SizeWide,
	"4:3":  SizeWide,
	"16:9": SizeWide,
}

// maps a user-supplied ratio token to a supported output size.
// Unknown tokens default to square, never an error.
func NormalizeRatio(ratio string) string {
	if size, ok := ratioSizes[strings.TrimSpace(ratio)]; ok {
		return size
	}

	return SizeSquare
}

// parses an arbitrary "W:H" ratio and scales it to concrete dimensions.
// The larger side is scaled to the base, the shorter proportionally, and
// both are clamped to the maximum. Malformed or non-positive input falls
// back to the square default.
func ScaleRatio(ratio string) (int, int) {
	parts := strings.SplitN(strings.TrimSpace(ratio), ":", 2)
	if len(parts) != 2 {
		return scaleBase, scaleBase
	}

	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return scaleBase, scaleBase
	}

	var width, height float64

	if w >= h {
		width = scaleBase
		height = scaleBase * h / w
	} else {
		height = scaleBase
		width = scaleBase * w / h
	}

	return clampDimension(width), clampDimension(height)
}

// formats scaled dimensions as a size token
func ScaledSize(ratio string) string {
	w, h := ScaleRatio(ratio)
	return fmt.Sprintf("%dx%d", w, h)
}

func clampDimension(d float64) int {
	n := int(d)

	if n < 1 {
		n = 1
	}

	if n > scaleMax {
		n = scaleMax
	}

	return n
}
