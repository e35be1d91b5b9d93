package styles

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"unicode/utf8"
)

const (
	fontCharWidth = 0.6
	fontSizeMin   = 6.0
	fontSizeMax   = 28.0
)

// FontSize returns a font size that fits text of textLen characters into
// availWidth, capped by preferred.
func FontSize(availWidth, preferred float64, textLen int) float64 {
	n := max(1, textLen)
	byWidth := availWidth / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, preferred, byWidth))
}

// TruncateLabel shortens label to fit availWidth at the given font size,
// marking the cut with "..".
func TruncateLabel(label string, availWidth, fontSize float64) string {
	maxChars := max(3, int(availWidth/(fontSize*fontCharWidth)))
	if utf8.RuneCountInString(label) <= maxChars {
		return label
	}
	r := []rune(label)
	return string(r[:maxChars-2]) + ".."
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// groupLabel renders group 0 (unassigned) as a dash.
func groupLabel(g int) string {
	if g <= 0 {
		return "-"
	}
	return strconv.Itoa(g)
}
