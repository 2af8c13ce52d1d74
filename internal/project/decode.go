package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// projectExtensions lists the accepted encodings of a project file, in lookup order.
var projectExtensions = []string{".json", ".yaml", ".yml"}

// findFile returns the first existing file named base with one of the project extensions.
func findFile(dir, base string) (string, bool) {
	for _, ext := range projectExtensions {
		path := filepath.Join(dir, base+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// decodeFile reads path into v. YAML files are converted to JSON first so the
// json tags of the schema types apply to both encodings.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return fmt.Errorf("failed to convert %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// decodeOptional decodes dir/base.<ext> into v, leaving v untouched when no such file exists.
func decodeOptional(dir, base string, v any) error {
	path, ok := findFile(dir, base)
	if !ok {
		return nil
	}
	return decodeFile(path, v)
}

// decodeRequired is decodeOptional for files the project cannot work without.
func decodeRequired(dir, base string, v any) error {
	path, ok := findFile(dir, base)
	if !ok {
		return fmt.Errorf("%s: %w", filepath.Join(dir, base+".json"), fs.ErrNotExist)
	}
	return decodeFile(path, v)
}

// isNotExist reports whether err means a file was missing.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
