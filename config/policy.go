package config

import (
	"bytes"
	"fmt"
	"os"

	atomicfile "github.com/natefinch/atomic"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/hostsmith/hostsmith/policy"
)

// LoadPolicy reads the YAML policy configuration. The file is loaded once
// per invocation and handed to the pipeline as a value; nothing in the
// core reads it ambiently.
func LoadPolicy(path string) (cfg policy.Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read policy configuration %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse policy configuration %q: %w", path, err)
	}
	return cfg, nil
}

// SamplePolicy renders the sample configuration emitted by sample-config.
func SamplePolicy() []byte {
	return lo.Must(yaml.Marshal(policy.Sample()))
}

// WriteSamplePolicy saves the sample configuration, replacing any existing
// file atomically.
func WriteSamplePolicy(path string) error {
	return atomicfile.WriteFile(path, bytes.NewReader(SamplePolicy()))
}
