package suite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bank is the on-disk structure for a check-suite file (JSON
// or YAML).
type Bank struct {
	// Version identifies the bank file format.
	Version string `json:"version"`

	// Checks holds the check definitions.
	Checks []Definition `json:"checks"`
}

// LoadBankFromFile reads a bank of check definitions from a
// JSON or YAML file, picking the decoder by extension. The
// json tags all match yaml.v3's default lowercased field
// names, so one set of structs serves both formats.
func LoadBankFromFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read bank file %s: %w", path, err,
		)
	}

	var bank Bank
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &bank)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &bank)
	default:
		return nil, fmt.Errorf(
			"unsupported bank file extension: %s", ext,
		)
	}
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse bank file %s: %w", path, err,
		)
	}

	return &bank, nil
}

// LoadBankFromDir loads and merges all .json, .yaml and .yml
// bank files from a directory, in lexical order. It does not
// recurse into subdirectories.
func LoadBankFromDir(dir string) (*Bank, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read directory %s: %w", dir, err,
		)
	}

	merged := &Bank{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		p := filepath.Join(dir, entry.Name())
		bank, err := LoadBankFromFile(p)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to load %s: %w", p, err,
			)
		}

		if merged.Version == "" {
			merged.Version = bank.Version
		}
		merged.Checks = append(merged.Checks, bank.Checks...)
	}

	return merged, nil
}
