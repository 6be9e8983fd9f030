package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable as soon as the package
// loads; InitLogger applies the production configuration.
var Log = logrus.New()

// InitLogger configures structured JSON logging on stdout. The level is
// taken from LOG_LEVEL, defaulting to info.
func InitLogger() {
	Log.Out = os.Stdout
	Log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}
