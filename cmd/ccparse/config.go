package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-sourced value seeding the builtin-typedef-name list
// and the initial parse position, the concrete form of §6's
// `builtin-type-name seeding from a configuration file` external
// collaborator — the parser package itself only ever sees the resulting
// []string and two ints.
type Config struct {
	BuiltinTypedefNames []string `yaml:"builtinTypedefNames"`
	StartLine           int      `yaml:"startLine"`
	StartColumn         int      `yaml:"startColumn"`
}

// defaultConfig seeds __builtin_va_list, the GCC-predefined type name that
// a preprocessed file most commonly relies on without ever typedef'ing it
// itself, so a bare `ccparse file.c` with no --config works
// against ordinary source.
func defaultConfig() Config {
	return Config{
		BuiltinTypedefNames: []string{"__builtin_va_list"},
		StartLine:           1,
		StartColumn:         1,
	}
}

// LoadConfig reads a YAML document at path into a Config, falling back to
// defaultConfig's values for any field the document leaves unset (a
// document that only overrides BuiltinTypedefNames still gets StartLine=1,
// StartColumn=1).
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
