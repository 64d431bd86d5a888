// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/seqalign/internal/logging"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"", logging.FormatConsole, logging.FormatJSON, "JSON"} {
		l, err := logging.New("debug", format)
		require.NoError(t, err, format)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel), format)
	}

	l, err := logging.New("warn", logging.FormatJSON)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", logging.FormatConsole)
	assert.Error(t, err)

	_, err = logging.New("info", "xml")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}

func TestNewTestLogger(t *testing.T) {
	assert.NotNil(t, logging.NewTestLogger())
}
