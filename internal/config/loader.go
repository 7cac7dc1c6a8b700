package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/oddword/internal/game"
)

// Load reads the gameplay configuration.
// Search order: customPath -> ~/.oddword/configs/oddword.yaml ->
// ./configs/oddword.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// A custom path is authoritative; failures are reported, not skipped.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("oddword.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/oddword.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// wordsFile is the on-disk shape of a word catalog.
type wordsFile struct {
	Pairs []game.WordPair `yaml:"pairs"`
}

// LoadWords reads the word catalog and validates it into a Catalog.
// Search order: customPath -> ~/.oddword/configs/words.yaml ->
// ./configs/words.yaml -> embedded default.
func LoadWords(customPath string) (*game.Catalog, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parseWords(data, customPath)
	}

	if userPath := userConfigPath("words.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if catalog, err := parseWords(data, userPath); err == nil {
				return catalog, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/words.yaml"); err == nil {
		if catalog, err := parseWords(data, "configs/words.yaml"); err == nil {
			return catalog, nil
		}
	}

	return parseWords(defaultWordsYAML, "embedded words.yaml")
}

// parseWords unmarshals and validates a catalog file.
func parseWords(data []byte, source string) (*game.Catalog, error) {
	var file wordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}

	catalog, err := game.NewCatalog(file.Pairs)
	if err != nil {
		return nil, fmt.Errorf("config: invalid catalog in %s: %w", source, err)
	}
	return catalog, nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oddword", "configs", filename)
}
