package provider

import (
	"sort"

	"github.com/bmatcuk/doublestar"
)

// Expand expands each of the given patterns into the paths that it matches. Patterns may use "**" to
// match any number of directories. Matches of a pattern are sorted and a path that was already matched
// by an earlier pattern is not repeated.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	paths := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(pattern)
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}
