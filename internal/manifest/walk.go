package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadAll walks the configured manifest roots and parses every YAML file
// found, skipping excluded paths.
func LoadAll(roots, excludes []string) ([]*Manifest, error) {
	files, err := walkManifestFiles(roots, excludes)
	if err != nil {
		return nil, err
	}

	manifests := make([]*Manifest, 0, len(files))
	for _, path := range files {
		m, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}

	if len(manifests) == 0 {
		return nil, fmt.Errorf("no manifests found under %s", strings.Join(roots, ", "))
	}
	return manifests, nil
}

func walkManifestFiles(roots []string, excludes []string) ([]string, error) {
	excluded := make([]string, 0, len(excludes))
	for _, path := range excludes {
		if path == "" {
			continue
		}
		excluded = append(excluded, filepath.Clean(path))
	}

	var files []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && isExcluded(path, excluded) {
				return filepath.SkipDir
			}
			if d.IsDir() {
				return nil
			}
			name := strings.ToLower(d.Name())
			if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
				return nil
			}
			if isExcluded(path, excluded) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isExcluded(path string, excludes []string) bool {
	clean := filepath.Clean(path)
	for _, exclude := range excludes {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
