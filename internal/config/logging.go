package config

import (
	"github.com/sirupsen/logrus" // Structured logging
)

// ConfigureLogger applies LOG_FORMAT and LOG_LEVEL to the standard logrus logger
func (c *Config) ConfigureLogger() {
	// JSON for log collectors, text with timestamps otherwise
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("Unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
