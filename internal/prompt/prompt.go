// Package prompt builds the natural-language instructions sent to the
// generation provider. Builders are pure: identical inputs produce
// byte-identical prompts, and missing optional fields substitute the
// documented "Not provided" label instead of failing. Section markers
// emitted by these templates (for example **POST A**) are load-bearing:
// the parse package relies on them.
package prompt

import (
	"fmt"
	"strings"
)

// NotProvided is the label substituted for absent optional parameters.
const NotProvided = "Not provided"

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotProvided
	}
	return s
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// optionalLine renders "label: value" when value is set, nothing otherwise.
func optionalLine(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", label, value)
}
