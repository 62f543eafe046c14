package core

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	if singleton == nil {
		once.Do(
			func() {
				l := log.NewWithOptions(os.Stderr, log.Options{
					ReportCaller:    true,
					ReportTimestamp: true,
					TimeFormat:      time.RFC3339,
					Prefix:          "Lumen 💡 ",
				})
				l.SetLevel(logLevel())
				singleton = &logger{l}
			})
	}
	return singleton
}

// logLevel reads the level from LUMEN_LOG_LEVEL, defaulting to debug.
func logLevel() log.Level {
	if s := os.Getenv("LUMEN_LOG_LEVEL"); s != "" {
		if level, err := log.ParseLevel(s); err == nil {
			return level
		}
	}
	return log.DebugLevel
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
