package staleness

import "strings"

// ParseDepfile extracts the dependency paths from a make-style rule file.
// Tokens are split on whitespace; line continuations and rule targets
// (tokens ending in ':') are dropped. Duplicates are removed, first
// occurrence wins.
func ParseDepfile(content string) []string {
	fields := strings.Fields(content)
	deps := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))

	for _, token := range fields {
		if token == `\` || strings.HasSuffix(token, ":") {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		deps = append(deps, token)
	}
	return deps
}
