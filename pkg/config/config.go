package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nikmy/palettes/pkg/errors"
)

// Load reads a YAML file into a fresh T. Unknown keys are rejected.
func Load[T any](path string) (*T, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.WrapFailf(err, "read %q", abs)
	}
	defer f.Close()

	var cfg T
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	return &cfg, nil
}
