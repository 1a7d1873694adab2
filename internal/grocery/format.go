package grocery

import (
	"math"
	"strconv"
	"strings"
)

// vulgar maps common fractional remainders (after rounding to two
// decimals) to their glyphs. Anything else renders as a decimal.
var vulgar = map[float64]string{
	0.25: "¼",
	0.33: "⅓",
	0.5:  "½",
	0.66: "⅔",
	0.75: "¾",
}

// FormatQuantity renders a grocery quantity for display: "½ cup",
// "2 ¼ cup", "250 grams". A nil quantity renders as the empty string
// (the item is listed without an amount). Values are rounded to two
// decimal places first; the whole part is omitted when it is zero and
// a fraction glyph applies.
func FormatQuantity(q *float64, unit string) string {
	if q == nil {
		return ""
	}

	v := math.Round(*q*100) / 100
	whole := math.Trunc(v)
	frac := math.Round((v-whole)*100) / 100

	var amount string
	switch {
	case frac == 0:
		amount = strconv.FormatFloat(whole, 'f', -1, 64)
	default:
		if glyph, ok := vulgar[frac]; ok {
			if whole == 0 {
				amount = glyph
			} else {
				amount = strconv.FormatFloat(whole, 'f', -1, 64) + " " + glyph
			}
		} else {
			amount = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	return strings.TrimSpace(amount + " " + unit)
}
