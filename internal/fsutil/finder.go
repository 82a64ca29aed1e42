// Package fsutil provides file system helpers for locating model
// description files.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ModelExtension is the file extension of model description files.
const ModelExtension = ".hcl"

// FindModelFile resolves a model path. A file path is returned as-is; a
// directory is searched recursively and must contain exactly one model
// description file, since a generation run compiles a single model.
func FindModelFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ModelExtension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	switch len(files) {
	case 0:
		return "", fmt.Errorf("no %s model file found under %s", ModelExtension, path)
	case 1:
		return files[0], nil
	default:
		return "", fmt.Errorf("found %d model files under %s, want exactly one", len(files), path)
	}
}
