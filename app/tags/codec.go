package tags

import (
	"regexp"
	"sort"
	"strings"
)

// Separator joins tags in the stored string form.
const Separator = ", "

// tagPattern is the character class a single tag must match. Commas are
// separators, never tag content.
var tagPattern = regexp.MustCompile(`^[\w\s]+$`)

// Parse splits a raw comma-separated tag string into individual tags.
// Elements are trimmed, empty elements dropped and duplicates collapsed,
// keeping first-seen order.
func Parse(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	var out []string
	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// Serialize joins tags into the canonical stored form. Tags are sorted
// lexicographically so repeated serialize/parse cycles are idempotent.
func Serialize(list []string) string {
	sorted := make([]string, len(list))
	copy(sorted, list)
	sort.Strings(sorted)
	return strings.Join(sorted, Separator)
}

// Normalize parses and re-serializes a raw tag string, producing the
// canonical deduplicated form stored on a post.
func Normalize(raw string) string {
	return Serialize(Parse(raw))
}

// Valid reports whether a single parsed tag contains only word characters
// and whitespace.
func Valid(tag string) bool {
	return tagPattern.MatchString(tag)
}

// Contains reports whether the tag list contains the given tag.
func Contains(list []string, tag string) bool {
	for _, t := range list {
		if t == tag {
			return true
		}
	}
	return false
}

// Diff computes the set difference between an old and a new tag list:
// added holds tags present only in new, removed tags present only in old.
// Tags in the intersection appear in neither.
func Diff(old, new []string) (added, removed []string) {
	for _, t := range new {
		if !Contains(old, t) {
			added = append(added, t)
		}
	}
	for _, t := range old {
		if !Contains(new, t) {
			removed = append(removed, t)
		}
	}
	return added, removed
}
