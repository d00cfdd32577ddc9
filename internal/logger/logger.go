// Package logger configures the process-wide logrus logger. picoctl is
// quiet by default; debugging output is opt-in through PICOCTL_DEBUG or the
// config file's log_level.
package logger

import (
	"os"

	log "github.com/sirupsen/logrus"
)

const DefaultLogLevel = "warn"

// DebugEnvVar switches on verbose failure diagnostics when set to any
// non-empty value.
const DebugEnvVar = "PICOCTL_DEBUG"

// Init applies the configured level. The debug env var wins over the
// level argument; an unparseable level falls back to the default.
func Init(level string) {
	if level == "" {
		level = DefaultLogLevel
	}
	if os.Getenv(DebugEnvVar) != "" {
		level = "debug"
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

// DebugEnabled reports whether extended diagnostics were requested.
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != "" || log.IsLevelEnabled(log.DebugLevel)
}
