package config

import "errors"

type QueueConfig struct {
	URL string `mapstructure:"url"`
	// Exchange is the topic exchange balance events are published to.
	Exchange string `mapstructure:"exchange"`
	// Enabled allows running without a broker; events are then dropped
	// with a debug log.
	Enabled bool `mapstructure:"enabled"`
}

func (cfg *QueueConfig) Validate() error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.URL == "" {
		return errors.New("missing queue url")
	}
	if cfg.Exchange == "" {
		return errors.New("missing queue exchange")
	}

	return nil
}
