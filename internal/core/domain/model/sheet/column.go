package sheet

import (
	"fmt"
	"strings"

	"ordersheet/internal/pkg/errs"
)

// ColumnIndex converts an A1 column letter ("A", "J", "AA") into a 0-based index.
func ColumnIndex(letters string) (int, error) {
	letters = strings.ToUpper(strings.TrimSpace(letters))
	if letters == "" {
		return 0, errs.NewValueIsRequiredError("column")
	}

	idx := 0
	for _, r := range letters {
		if r < 'A' || r > 'Z' {
			return 0, errs.NewValueIsInvalidErrorWithCause("column", fmt.Errorf("%q is not an A1 column", letters))
		}
		idx = idx*26 + int(r-'A'+1)
	}
	return idx - 1, nil
}

// ColumnLetter converts a 0-based index into its A1 column letters.
func ColumnLetter(idx int) string {
	var b []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
