package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Entry pairs a .dat file with the column count an operator expects it to
// have. Columns is informational for the scanner.
type Entry struct {
	Path    string `json:"path" yaml:"path"`
	Columns int    `json:"columns" yaml:"columns"`
}

// Defaults: the fixed file set the tool was built around.
func Defaults() []Entry {
	return []Entry{
		{Path: "1099MTbl.dat", Columns: 7},
		{Path: "1099MTran.dat", Columns: 15},
	}
}

// Load reads a manifest from a JSON or YAML file. An empty path yields the
// built-in defaults.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Defaults(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &entries); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
	case ".json":
		if err := sonic.Unmarshal(b, &entries); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
	default:
		return nil, errors.New("unsupported manifest format (use .json or .yaml/.yml)")
	}
	if len(entries) == 0 {
		return nil, errors.New("manifest has no entries")
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Path) == "" {
			return nil, fmt.Errorf("manifest entry %d: empty path", i)
		}
		if e.Columns < 1 {
			return nil, fmt.Errorf("manifest entry %d (%s): columns must be >= 1", i, e.Path)
		}
	}
	return entries, nil
}
