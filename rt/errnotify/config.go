package errnotify

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the Notifier flags.
//
//	catching_enabled: true
//	logging_enabled: true
type Config struct {
	CatchingEnabled bool `yaml:"catching_enabled" json:"catching_enabled"`
	LoggingEnabled  bool `yaml:"logging_enabled" json:"logging_enabled"`
}

// DecodeConfig reads a YAML Config from r. Unknown fields are rejected; an empty document
// yields the zero Config.
func DecodeConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("errnotify: decode config: %w", err)
	}
	return cfg, nil
}

// InitConfig is Init(subscribers, cfg.CatchingEnabled, cfg.LoggingEnabled).
func (n *Notifier) InitConfig(cfg Config, subscribers any) {
	n.Init(subscribers, cfg.CatchingEnabled, cfg.LoggingEnabled)
}
