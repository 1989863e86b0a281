package validation

import (
	"strconv"
	"strings"
)

// ParsePath splits a dotted field reference such as "items[2].name" into
// path segments ("items", 2, "name"). Bracketed integers become ints and
// bracketed keys stay strings.
func ParsePath(field string) []any {
	if field == "" {
		return nil
	}
	var path []any
	for _, part := range strings.Split(field, ".") {
		name, rest, _ := strings.Cut(part, "[")
		if name != "" {
			path = append(path, name)
		}
		for rest != "" {
			idx, tail, ok := strings.Cut(rest, "]")
			if !ok {
				path = append(path, idx)
				break
			}
			if n, err := strconv.Atoi(idx); err == nil {
				path = append(path, n)
			} else {
				path = append(path, idx)
			}
			rest = strings.TrimPrefix(tail, "[")
		}
	}
	return path
}

// namespacePath drops the root struct name from a validator namespace.
// Namespaces of top-level slices start at the index ("[0].sku").
func namespacePath(namespace string) []any {
	if strings.HasPrefix(namespace, "[") {
		return ParsePath(namespace)
	}
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return ParsePath(rest)
	}
	return ParsePath(namespace)
}
