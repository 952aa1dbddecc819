package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover finds SQL files under the given path. A directory is walked
// recursively; a single .sql file is returned as-is. Dot directories such
// as .git and .selq are skipped.
func Discover(rootPath string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		if !isSQLFile(absRoot) {
			return nil, fmt.Errorf("not a SQL file: %s", absRoot)
		}
		return []DiscoveredFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			ModTime:      info.ModTime(),
		}}, nil
	}

	var files []DiscoveredFile

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			// Skip hidden directories, but not the root itself
			if path != absRoot && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !isSQLFile(path) {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: relPath,
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}

func isSQLFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".sql")
}
