package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_DefaultLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	InitLogger()

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)
}

func TestInitLogger_LevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	InitLogger()

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}

func TestLogUsableBeforeInit(t *testing.T) {
	assert.NotNil(t, Log)
}
