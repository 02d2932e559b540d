package kernel

import (
	"strings"
	"unicode"
)

// TextMarker is the leading apostrophe that makes the storage engine keep a value
// verbatim as text instead of coercing it into a number or a date serial.
const TextMarker = "'"

// FormatDate converts an ISO "YYYY-MM-DD" date into a text-forced "DD/MM/YYYY" cell.
// Input that does not split into exactly three dash-separated parts is kept as is,
// still text-forced. Empty input yields an empty cell.
func FormatDate(isoDate string) string {
	if isoDate == "" {
		return ""
	}

	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return TextMarker + isoDate
	}

	return TextMarker + parts[2] + "/" + parts[1] + "/" + parts[0]
}

// FormatPhone strips dashes and whitespace, rewrites a leading "66" country code to "0"
// and text-forces the result so the leading zero survives. No digit-count validation.
func FormatPhone(raw string) string {
	phone := strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if phone == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(phone, "66"); ok {
		phone = "0" + rest
	}

	return TextMarker + phone
}
