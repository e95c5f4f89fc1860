package kafka

import "time"

// Config holds Kafka producer parameters.
type Config struct {
	Brokers []string

	// BatchTimeout bounds how long messages wait for a batch to fill.
	BatchTimeout time.Duration
	// WriteTimeout bounds a single write to the brokers.
	WriteTimeout time.Duration
	// AllowAutoTopicCreation lets the broker create missing topics.
	AllowAutoTopicCreation bool
}

func (c Config) batchTimeout() time.Duration {
	if c.BatchTimeout <= 0 {
		return 10 * time.Millisecond
	}
	return c.BatchTimeout
}

func (c Config) writeTimeout() time.Duration {
	if c.WriteTimeout <= 0 {
		return 5 * time.Second
	}
	return c.WriteTimeout
}
