package logging

import (
	"strings"

	"go.llib.dev/prelude/pkg/env"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Level string

func (ll Level) String() string { return string(ll) }

var levelAliases = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"error":    LevelError,
	"fatal":    LevelFatal,
	"critical": LevelFatal,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
	"f": LevelFatal,
	"c": LevelFatal,
}

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}

// ParseLevel resolves a level name or its one letter alias.
func ParseLevel(raw string) (Level, bool) {
	level, ok := levelAliases[strings.ToLower(strings.TrimSpace(raw))]
	return level, ok
}

var envKeys = []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"}

// LevelFromEnv looks up the logging level in the environment.
func LevelFromEnv() (Level, bool) {
	for _, key := range envKeys {
		raw, ok, err := env.Lookup[string](key)
		if err != nil || !ok {
			continue
		}
		if level, ok := ParseLevel(raw); ok {
			return level, true
		}
	}
	return "", false
}
