package analyzer

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// DiscoverProjects finds Spring project roots under base by looking for
// pom.xml or build.gradle marker files. Nested Maven modules are returned
// as separate projects. Results are sorted by path.
func DiscoverProjects(base string) ([]string, error) {
	if _, err := os.Stat(base); err != nil {
		return nil, err
	}

	var roots []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			name := d.Name()
			if path != base && (strings.HasPrefix(name, ".") || name == "target" || name == "build" || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == "pom.xml" || d.Name() == "build.gradle" || d.Name() == "build.gradle.kts" {
			roots = append(roots, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(roots)
	return dedupe(roots), nil
}

func dedupe(paths []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

var artifactID = regexp.MustCompile(`<artifactId>(.*?)</artifactId>`)

// ServiceName derives the service name for a project root: the first
// artifactId in pom.xml when present, otherwise the directory base name.
func ServiceName(root string) string {
	if data, err := os.ReadFile(filepath.Join(root, "pom.xml")); err == nil {
		if m := artifactID.FindStringSubmatch(string(data)); m != nil && m[1] != "" {
			return m[1]
		}
	}
	return filepath.Base(root)
}

// BuildTool reports the build system of a project root.
func BuildTool(root string) string {
	if _, err := os.Stat(filepath.Join(root, "pom.xml")); err == nil {
		return "Maven"
	}
	if _, err := os.Stat(filepath.Join(root, "build.gradle")); err == nil {
		return "Gradle"
	}
	if _, err := os.Stat(filepath.Join(root, "build.gradle.kts")); err == nil {
		return "Gradle"
	}
	return "Unknown"
}
