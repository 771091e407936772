package formatters

import (
	"path"
	"sort"
)

var availableColors = []string{
	"lightblue", "lightyellow", "mistyrose", "lightsalmon",
	"lightpink", "lavender", "peachpuff", "plum", "powderblue", "khaki",
	"palegoldenrod", "thistle",
}

// ExtensionColors assigns a fill color to every extension present in
// fileNames. Extensions are colored in sorted order so the assignment is
// stable between runs.
func ExtensionColors(fileNames []string) map[string]string {
	sortedExtensions := sortedExtensions(fileNames)

	extensionColors := make(map[string]string, len(sortedExtensions))
	for i, ext := range sortedExtensions {
		extensionColors[ext] = availableColors[i%len(availableColors)]
	}

	return extensionColors
}

// MajorityExtension returns the most common extension in fileNames. Ties go
// to the extension that sorts first. The second result reports whether more
// than one extension is present.
func MajorityExtension(fileNames []string) (string, bool) {
	extensionCounts := make(map[string]int)
	for _, fileName := range fileNames {
		extensionCounts[path.Ext(fileName)]++
	}

	extensions := make([]string, 0, len(extensionCounts))
	for ext := range extensionCounts {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)

	maxCount := 0
	majority := ""
	for _, ext := range extensions {
		if extensionCounts[ext] > maxCount {
			maxCount = extensionCounts[ext]
			majority = ext
		}
	}

	return majority, len(extensions) > 1
}

func sortedExtensions(fileNames []string) []string {
	unique := make(map[string]bool)
	for _, fileName := range fileNames {
		if ext := path.Ext(fileName); ext != "" {
			unique[ext] = true
		}
	}

	extensions := make([]string, 0, len(unique))
	for ext := range unique {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}
