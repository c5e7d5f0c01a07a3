package checkstyle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// javaExt is the source-file extension the engine understands.
const javaExt = ".java"

var (
	// ErrPathNotFound indicates the analysis target does not exist.
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotDirectory indicates a directory was required but the target is not one.
	ErrNotDirectory = errors.New("path is not a directory")
	// ErrNotJavaFile indicates a single-file target without the .java extension.
	ErrNotJavaFile = errors.New("file is not a Java file")
)

// DiscoverJavaFiles walks root recursively and returns all Java files,
// sorted by path. An empty result is valid: a tree with no Java files
// yields an empty report, not an error.
func DiscoverJavaFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if !d.IsDir() && strings.HasSuffix(path, javaExt) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)

	return files, nil
}

// CheckJavaFile validates a single-file analysis target.
func CheckJavaFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	if info.IsDir() || !strings.HasSuffix(path, javaExt) {
		return fmt.Errorf("%w: %s", ErrNotJavaFile, path)
	}

	return nil
}
