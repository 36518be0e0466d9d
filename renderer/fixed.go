package renderer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed renders a number with exactly places digits after the decimal
// point, right-aligned with spaces to width. Width is a minimum, not a cap:
// a value too long for its column is never truncated, the column just
// stretches.
func Fixed[T float64 | decimal.Decimal](value T, width, places int) string {
	var s string
	switch v := any(value).(type) {
	case decimal.Decimal:
		s = v.StringFixed(int32(places))
	case float64:
		s = strconv.FormatFloat(v, 'f', places, 64)
	}
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
