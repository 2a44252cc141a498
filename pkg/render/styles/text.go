package styles

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes s for use in SVG text content and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// FontWeight returns the CSS font weight for bold or regular text.
func FontWeight(bold bool) string {
	if bold {
		return "bold"
	}
	return "normal"
}
