package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithComponent(WithContext(context.Background(), logger), "store")
	FromContext(WithDivider(ctx, 2)).Debug().Int("panes", 3).Msg("registered")

	out := buf.String()
	assert.Contains(t, out, `"component":"store"`)
	assert.Contains(t, out, `"divider":2`)
	assert.Contains(t, out, `"panes":3`)
	assert.Contains(t, out, `"message":"registered"`)
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorOptions{Dir: dir, Name: "test.log", MaxSizeMB: 1, MaxBackups: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
	assert.Equal(t, filepath.Join(dir, "test.log"), r.Path())
}

func TestLogRotator_CloseThenWriteReopens(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorOptions{Dir: dir, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	_, err = r.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(filepath.Join(dir, "splitter.log"))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestLogRotator_CompressesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorOptions{Dir: dir, Name: "run.log", MaxSizeMB: 1, MaxBackups: 1, Compress: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	stale := filepath.Join(dir, "run.log.20200101T000000.000000000.gz")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o600))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	chunk := []byte(strings.Repeat("y", 700*1024))
	for i := 0; i < 2; i++ {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Len(t, names, 2, "active file plus one backup: %v", names)
	assert.NotContains(t, names, filepath.Base(stale))
	for _, name := range names {
		if name != "run.log" {
			assert.True(t, strings.HasSuffix(name, ".gz"), name)
		}
	}
}

func TestRunFilenames(t *testing.T) {
	id := NewRunID(time.Date(2026, 10, 19, 20, 51, 6, 0, time.Local))
	assert.True(t, strings.HasPrefix(id, "20261019_205106_"))
	assert.Len(t, ShortRunID(id), 4)

	parsed, ok := ParseRunFilename(RunFilename(id))
	require.True(t, ok)
	assert.Equal(t, id, parsed)

	started, ok := RunStartedAt(id)
	require.True(t, ok)
	assert.Equal(t, 51, started.Minute())

	_, ok = ParseRunFilename(RunFilename(id) + ".20261019T205106.000000000")
	assert.False(t, ok, "rotated backups are not runs")
	_, ok = ParseRunFilename("notes.txt")
	assert.False(t, ok)
	_, ok = RunStartedAt("abc")
	assert.False(t, ok)
}

func TestNewWithFile_WritesRunLog(t *testing.T) {
	dir := t.TempDir()
	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, Dir: dir, RunID: "20261019_205106_a7b3", MaxSizeMB: 1},
	)
	require.NoError(t, err)

	logger.Info().Str("pane", "editor").Msg("collapsed")
	logger.Debug().Msg("filtered")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, RunFilename("20261019_205106_a7b3")))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"run":"20261019_205106_a7b3"`)
	assert.Contains(t, out, `"message":"collapsed"`)
	assert.NotContains(t, out, "filtered")
}

func TestNewWithFile_DisabledIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	cleanup()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}
