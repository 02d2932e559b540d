package errs

import (
	"fmt"
	"strings"
)

var sanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitize renders v for an error message and keeps the message on a single line.
func sanitize(v any) string {
	return sanitizer.Replace(fmt.Sprintf("%v", v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause.Error())
}
