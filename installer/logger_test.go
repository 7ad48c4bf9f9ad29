package installer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crafted-tech/logonapp/platform"
	"github.com/crafted-tech/logonapp/platform/platformtest"
)

func TestLevelPrefix(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "[TRACE]:"},
		{LevelInfo, "[INFO]:"},
		{LevelWarning, "[WARNING]"},
		{LevelError, "[ERROR]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.Prefix())
	}
}

func TestConsoleLogger(t *testing.T) {
	var out bytes.Buffer
	log := NewConsoleLogger(&out)

	log.Info("Executing %s", "V3 files cleanup...")
	log.Warn("Strategy reported issues.")
	log.Error("boom")
	log.Trace("detail")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "[INFO]:")
	assert.Contains(t, lines[0], "Executing V3 files cleanup...")
	assert.Contains(t, lines[1], "[WARNING]")
	assert.Contains(t, lines[2], "[ERROR]")
	assert.Contains(t, lines[3], "[TRACE]:")

	assert.Equal(t, []string{
		"[INFO]: Executing V3 files cleanup...",
		"[WARNING] Strategy reported issues.",
		"[ERROR] boom",
		"[TRACE]: detail",
	}, log.Lines())
}

func TestSessionLoggerRoutesByLevel(t *testing.T) {
	session := platformtest.NewSession(nil)
	log := NewSessionLogger(session, filepath.Join(t.TempDir(), "fallback.log"))

	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")
	log.Trace("trace line")

	require.Len(t, session.Messages, 4)
	assert.Equal(t, platform.MessageInfo, session.Messages[0].Kind)
	assert.Equal(t, platform.MessageWarning, session.Messages[1].Kind)
	assert.Equal(t, platform.MessageError, session.Messages[2].Kind)
	assert.Equal(t, platform.MessageActionData, session.Messages[3].Kind)
	assert.Contains(t, session.Messages[0].Text, "[INFO]:")
	assert.Contains(t, session.Messages[0].Text, "info line")
}

func TestSessionLoggerFallsBackToFile(t *testing.T) {
	session := platformtest.NewSession(nil)
	session.MessageErr = errors.New("installer gone")
	fallback := filepath.Join(t.TempDir(), "MSILogFallback.log")

	log := NewSessionLogger(session, fallback)
	log.Error("could not delete key")

	data, err := os.ReadFile(fallback)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[ERROR]")
	assert.Contains(t, string(data), "could not delete key")
}

func TestSessionLoggerWithoutSession(t *testing.T) {
	log := NewSessionLogger(nil, "")
	assert.NotPanics(t, func() { log.Info("no host") })
	assert.Equal(t, "[INFO]: no host", log.Content())
}

func TestNilLogger(t *testing.T) {
	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("ignored")
		log.Close()
	})
	assert.Empty(t, log.Content())
	assert.Empty(t, log.Path())
}

func TestLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleanup.log")
	var console bytes.Buffer

	log, err := NewLoggerToFile(path, WithConsole(&console))
	require.NoError(t, err)
	log.Info("Removing %s", `C:\ProgramData\WatchGuard`)
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Removing C:\ProgramData\WatchGuard`)
	assert.Contains(t, string(data), "Log ended")
	assert.Contains(t, console.String(), `Removing C:\ProgramData\WatchGuard`)
	assert.Equal(t, path, log.Path())
}

func TestNewLoggerWritesHeader(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())
	t.Setenv("TEMP", os.Getenv("TMPDIR"))
	t.Setenv("TMP", os.Getenv("TMPDIR"))

	log, err := NewLogger("logonapp-test")
	require.NoError(t, err)
	defer log.Close()

	assert.True(t, strings.HasPrefix(filepath.Base(log.Path()), "logonapp-test-"))
	assert.Contains(t, log.Content(), "=== logonapp-test Log ===")
}
