package push

import "regexp"

var (
	expoTokenPattern = regexp.MustCompile(`^Expo(nent)?PushToken\[.+\]$`)
	uuidTokenPattern = regexp.MustCompile(`(?i)^[a-z\d]{8}-[a-z\d]{4}-[a-z\d]{4}-[a-z\d]{4}-[a-z\d]{12}$`)
)

// IsExpoPushToken reports whether token has a shape Expo accepts.
func IsExpoPushToken(token string) bool {
	return expoTokenPattern.MatchString(token) || uuidTokenPattern.MatchString(token)
}

// FilterTokens splits tokens into valid (deduplicated, in order) and invalid ones.
func FilterTokens(tokens []string) (valid, invalid []string) {
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if !IsExpoPushToken(t) {
			invalid = append(invalid, t)
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		valid = append(valid, t)
	}
	return valid, invalid
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}
	var out [][]T
	for len(items) > 0 {
		n := size
		if len(items) < n {
			n = len(items)
		}
		out = append(out, items[:n])
		items = items[n:]
	}
	return out
}
