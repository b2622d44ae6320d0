// Package config provides configuration management for oneiro.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// stopWordsFile is the YAML structure of a stop-word override file.
type stopWordsFile struct {
	StopWords []string `yaml:"stop_words"`
}

// LoadStopWords reads a YAML stop-word override file and returns the set.
// If path is empty or the file does not exist, it returns nil, meaning the
// analyzer should use its built-in list.
func LoadStopWords(path string) (map[string]bool, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var f stopWordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.StopWords) == 0 {
		return nil, nil
	}

	set := make(map[string]bool, len(f.StopWords))
	for _, w := range f.StopWords {
		set[w] = true
	}
	return set, nil
}
