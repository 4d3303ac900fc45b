package render

import "strings"

// ParseArgs parses a flat argument vector into a mapping. Supported shapes:
// --key=value, --key value, --flag, -k value, -f. A flag with no following
// non-flag token becomes boolean true. Positional tokens with no pending
// flag are ignored.
func ParseArgs(argv []string) map[string]any {
	result := make(map[string]any)
	pending := ""

	flush := func() {
		if pending != "" {
			result[pending] = true
			pending = ""
		}
	}

	for _, token := range argv {
		switch {
		case strings.HasPrefix(token, "--"):
			body := token[2:]
			if key, value, found := strings.Cut(body, "="); found {
				flush()
				result[key] = value
			} else {
				flush()
				pending = body
			}
		case strings.HasPrefix(token, "-") && len(token) > 1:
			flush()
			pending = token[1:]
		default:
			if pending != "" {
				result[pending] = token
				pending = ""
			}
		}
	}
	flush()

	return result
}
