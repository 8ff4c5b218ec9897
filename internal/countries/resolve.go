package countries

import (
	"sort"
	"strings"
)

// sortedNames keeps substring resolution deterministic across runs.
var sortedNames = func() []string {
	names := make([]string, 0, len(codeByName))
	for name := range codeByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// Resolve maps a free-form country name to its alpha-2 code. Matching is
// tried in order: exact name, the segment after the last comma (covers
// "Paris, France" style input), then a substring match in either
// direction. When everything fails the first two letters are uppercased
// and returned with exact=false; callers should treat that guess as
// unreliable.
func Resolve(name string) (code string, exact bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}

	if code, ok := exactMatch(trimmed); ok {
		return code, true
	}

	if i := strings.LastIndex(trimmed, ","); i >= 0 {
		tail := strings.TrimSpace(trimmed[i+1:])
		if code, ok := exactMatch(tail); ok {
			return code, true
		}
	}

	lower := strings.ToLower(trimmed)
	for _, tableName := range sortedNames {
		tableLower := strings.ToLower(tableName)
		if strings.Contains(tableLower, lower) || strings.Contains(lower, tableLower) {
			return codeByName[tableName], true
		}
	}

	guess := strings.ToUpper(trimmed)
	if len(guess) > 2 {
		guess = guess[:2]
	}
	return guess, false
}

func exactMatch(name string) (string, bool) {
	if code, ok := codeByName[name]; ok {
		return code, true
	}
	for tableName, code := range codeByName {
		if strings.EqualFold(tableName, name) {
			return code, true
		}
	}
	return "", false
}
