package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure("info", "text") })

	Configure("debug", "JSON")
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Log.Formatter)

	Configure("nonsense", "text")
	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, Log.Formatter)
}

func TestFor(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("info", "json")
	t.Cleanup(func() { Init() })

	For("fov").WithField("entity_id", 3).Info("computed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "fov", record["component"])
	assert.Equal(t, float64(3), record["entity_id"])
	assert.Equal(t, "computed", record["msg"])
}

func TestInit_ReadsEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "text")
	Init()
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	t.Setenv("LOG_LEVEL", "info")
	Init()
}
