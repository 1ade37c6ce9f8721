// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package config

import (
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config describes how to build a container.
//
//	autowiring: true
//	use_annotations: false
//	logging:
//	  driver: zap
//	  level: debug
//	  encoding: json
//	values:
//	  dsn: ${DATABASE_URL}
type Config struct {
	// Autowiring defaults to true when unset.
	Autowiring     *bool   `yaml:"autowiring"`
	UseAnnotations bool    `yaml:"use_annotations"`
	Logging        Logging `yaml:"logging"`

	// Values are registered as Value entries, keyed by id.
	Values map[string]interface{} `yaml:"values"`
}

// Logging selects where container events go.
type Logging struct {
	Driver   string `yaml:"driver" validate:"oneof=nop console zap"`
	Level    string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Encoding string `yaml:"encoding" validate:"omitempty,oneof=json console"`
}

// Default returns the configuration used when nothing is loaded: autowiring
// on, annotations off and events dropped.
func Default() Config {
	enabled := true
	return Config{
		Autowiring: &enabled,
		Logging: Logging{
			Driver:   "nop",
			Level:    "info",
			Encoding: "json",
		},
	}
}

// Load reads YAML from r over the defaults. ${VAR} and $VAR references are
// expanded from the environment before parsing, and unknown keys are
// rejected.
func Load(r io.Reader) (Config, error) {
	return load(r, os.Getenv)
}

func load(r io.Reader, mapping func(string) string) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading configuration")
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict([]byte(os.Expand(string(data), mapping)), &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load for the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	cfg, err := Load(f)
	return cfg, errors.Wrapf(err, "loading %s", path)
}

var validate = validator.New()

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	return errors.Wrap(validate.Struct(c), "invalid configuration")
}

// AutowiringEnabled reports the effective autowiring setting.
func (c Config) AutowiringEnabled() bool {
	return c.Autowiring == nil || *c.Autowiring
}
