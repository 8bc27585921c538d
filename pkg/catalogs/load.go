package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/noi-techpark/solda-aliens4friends-sub000/pkg/errors"
)

// Load reads a catalog snapshot from path. The format is chosen by file
// extension: .yaml/.yml or .json. The document is a flat list of
// {source_name, version} records, the shape the catalog fetcher caches.
func Load(path string) (Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var entries []Entry
	switch format(path) {
	case "yaml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	default:
		return nil, errors.NewParseError(format(path), path, "unsupported catalog format", nil)
	}

	return New(entries), nil
}

// LoadAliases reads the alias table from path: a flat map from package name
// to its known-correct catalog counterpart. Same formats as Load.
func LoadAliases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	aliases := make(map[string]string)
	switch format(path) {
	case "yaml":
		if err := yaml.Unmarshal(data, &aliases); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &aliases); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	default:
		return nil, errors.NewParseError(format(path), path, "unsupported alias table format", nil)
	}

	return aliases, nil
}

// format maps a file extension to a decoder name.
func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}
