// Package binding substitutes data references into document text.
// References use the form ${path.to.value}; paths descend through maps
// by key and through arrays by [index]. A reference may carry a fallback
// (${path:-fallback}) used when the path cannot be resolved; without a
// fallback an unresolved reference is left in place.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Expand replaces every ${...} reference in text with the value it
// resolves to in data. A nil data leaves text unchanged.
func Expand(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-1])
		path, fallback, hasFallback := strings.Cut(expr, ":-")
		path = strings.TrimSpace(path)
		if path == "" {
			return match
		}
		if val, ok := resolve(data, path); ok {
			return format(val)
		}
		if hasFallback {
			return fallback
		}
		return match
	})
}

// format renders a resolved value, preferring a Stringer when present.
func format(val any) string {
	if s, ok := val.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(val)
}

// resolve walks data along a dotted path with optional [index] suffixes
// per segment, e.g. "items[2].name".
func resolve(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes, ok := splitSegment(segment)
		if !ok {
			return nil, false
		}
		if name != "" {
			next, ok := descendKey(current, name)
			if !ok {
				return nil, false
			}
			current = next
		}
		for _, idx := range indexes {
			next, ok := descendIndex(current, idx)
			if !ok {
				return nil, false
			}
			current = next
		}
	}
	return current, true
}

// splitSegment separates "name[1][2]" into the name and its indexes.
func splitSegment(segment string) (string, []int, bool) {
	open := strings.IndexByte(segment, '[')
	if open == -1 {
		return segment, nil, true
	}
	name := segment[:open]
	var indexes []int
	rest := segment[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, false
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return "", nil, false
		}
		idx, err := strconv.Atoi(rest[1:end])
		if err != nil {
			return "", nil, false
		}
		indexes = append(indexes, idx)
		rest = rest[end+1:]
	}
	return name, indexes, true
}

func descendKey(current any, key string) (any, bool) {
	switch c := current.(type) {
	case map[string]any:
		val, ok := c[key]
		return val, ok
	case map[string]string:
		val, ok := c[key]
		return val, ok
	default:
		return nil, false
	}
}

func descendIndex(current any, idx int) (any, bool) {
	switch c := current.(type) {
	case []any:
		if idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	case []string:
		if idx < 0 || idx >= len(c) {
			return nil, false
		}
		return c[idx], true
	default:
		return nil, false
	}
}
