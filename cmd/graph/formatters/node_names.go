package formatters

import (
	"path"
	"strings"
)

// BuildNodeNames returns stable, distinct display names for file paths.
// Paths that share the same base name are disambiguated by increasing path suffix depth.
func BuildNodeNames(paths []string) map[string]string {
	names := make(map[string]string, len(paths))
	groupedByBase := make(map[string][]string, len(paths))
	for _, p := range paths {
		base := path.Base(p)
		groupedByBase[base] = append(groupedByBase[base], p)
	}

	for base, groupedPaths := range groupedByBase {
		if len(groupedPaths) == 1 {
			names[groupedPaths[0]] = base
			continue
		}

		for depth := 2; ; depth++ {
			suffixCounts := make(map[string]int, len(groupedPaths))
			exhausted := true
			for _, p := range groupedPaths {
				suffix := pathSuffix(p, depth)
				suffixCounts[suffix]++
				if suffix != p {
					exhausted = false
				}
			}

			allDistinct := true
			for _, p := range groupedPaths {
				if suffixCounts[pathSuffix(p, depth)] > 1 {
					allDistinct = false
					break
				}
			}
			if !allDistinct && !exhausted {
				continue
			}

			for _, p := range groupedPaths {
				names[p] = pathSuffix(p, depth)
			}
			break
		}
	}

	return names
}

func pathSuffix(p string, depth int) string {
	parts := strings.Split(strings.TrimPrefix(p, "/"), "/")
	if depth > len(parts) {
		depth = len(parts)
	}
	return strings.Join(parts[len(parts)-depth:], "/")
}
