package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// appNameHook prefixes every entry with the app name so SDK log lines
// stay attributable when the client is embedded in a larger process.
type appNameHook struct {
	appName string
}

func (h *appNameHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *appNameHook) Fire(entry *logrus.Entry) error {
	entry.Message = "[" + h.appName + "] " + entry.Message
	return nil
}

// InitLogger configures the shared logger. Output goes to stderr so the
// CLI's stdout stays reserved for command results; LOG_LEVEL tunes
// verbosity.
func InitLogger(appName string) {
	Logger.SetOutput(os.Stderr)

	logLevelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "warn"
	}
	level, err := logrus.ParseLevel(logLevelStr)
	if err != nil {
		Logger.Warnf("Invalid LOG_LEVEL '%s', defaulting to WARN", logLevelStr)
		level = logrus.WarnLevel
	}
	Logger.SetLevel(level)

	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		DisableLevelTruncation: true,
	})

	Logger.AddHook(&appNameHook{appName})
}
