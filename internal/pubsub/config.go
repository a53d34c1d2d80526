package pubsub

import "time"

type Config struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`

	// Group makes tailing resumable. Without it a tail starts at the end of
	// the topic and commits nothing.
	Group string `yaml:"group"`

	BatchTimeout time.Duration `yaml:"batch_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}
