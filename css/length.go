package css

import (
	"regexp"
	"strconv"
	"strings"
)

// pxPerPt converts points to CSS pixels (96 px per inch, 72 pt per inch).
const pxPerPt = 96.0 / 72.0

var numRe = regexp.MustCompile(`^-?[\d.]+`)

// Px returns the pixel magnitude of a CSS length: bare numbers and "px"
// values are taken as-is, "pt" values are converted. Absent or unparsable
// input resolves to 0 — callers decide whether 0 is meaningful.
func Px(v string) float64 {
	v = strings.TrimSpace(v)
	m := numRe.FindString(v)
	if m == "" {
		return 0
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	if strings.HasSuffix(v, "pt") {
		return n * pxPerPt
	}
	return n
}

// Percent returns the numeric percentage of a value like "60%", or 0 when
// the value is not a percentage.
func Percent(v string) float64 {
	v = strings.TrimSpace(v)
	if !strings.HasSuffix(v, "%") {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
	if err != nil {
		return 0
	}
	return n
}

// Length resolves any CSS length to pixels. Percentages are taken against
// ref (the slide dimension along the axis in question) and "em" against the
// base font size in pixels. Everything else goes through Px.
func Length(v string, ref, em float64) float64 {
	v = strings.TrimSpace(v)
	switch {
	case strings.HasSuffix(v, "%"):
		return Percent(v) / 100 * ref
	case strings.HasSuffix(v, "em"):
		m := numRe.FindString(v)
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return 0
		}
		return n * em
	default:
		return Px(v)
	}
}
