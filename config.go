package sqslambda

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config carries the deployment wiring the template provisions around the
// function: the queue, the notification topic, the dead-letter queue, the
// deployment environment and the logging verbosity. None of these values
// gate processing — they only enrich log context — so any of them may be
// empty.
type Config struct {
	QueueURL    string `koanf:"queue_url"`
	TopicARN    string `koanf:"topic_arn"`
	DLQURL      string `koanf:"dlq_url"`
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`
}

// LoadConfig reads QUEUE_URL, TOPIC_ARN, DLQ_URL, ENVIRONMENT and LOG_LEVEL
// from the process environment. Missing variables are left empty.
func LoadConfig() (Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
