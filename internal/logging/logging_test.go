package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/askiada/go-dataprep/internal/logging"
)

func TestNewWithWriterJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "info", "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("stage done", zap.String("stage", "clean"), zap.Int("rows", 3))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "stage done", entry["msg"])
	assert.Equal(t, "clean", entry["stage"])
	assert.EqualValues(t, 3, entry["rows"])
}

func TestNewWithWriterConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.NewWithWriter(&buf, "debug", "console")
	require.NoError(t, err)

	logger.Debug("scaling", zap.String("stage", "scale"))
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "scaling")
	assert.Contains(t, buf.String(), `"stage": "scale"`)
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := logging.New("loud", "console")
	assert.Error(t, err)

	_, err = logging.New("info", "xml")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}
