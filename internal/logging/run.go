package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

const (
	runFilePrefix = "run_"
	runFileSuffix = ".log"
	runIDLayout   = "20060102_150405"
)

// NewRunID returns an identifier for one TUI run, e.g. 20261019_205106_a7b3.
func NewRunID(now time.Time) string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format(runIDLayout) + "_" + hex.EncodeToString(random)
}

// ShortRunID returns the random suffix users type to pick a run.
func ShortRunID(runID string) string {
	if i := strings.LastIndexByte(runID, '_'); i >= 0 && i < len(runID)-1 {
		return runID[i+1:]
	}
	return runID
}

// RunStartedAt parses the timestamp embedded in a run ID.
func RunStartedAt(runID string) (time.Time, bool) {
	if len(runID) < len(runIDLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(runIDLayout, runID[:len(runIDLayout)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// RunFilename is the log file name of a run.
func RunFilename(runID string) string {
	return runFilePrefix + runID + runFileSuffix
}

// ParseRunFilename reverses RunFilename. Rotated backups do not match.
func ParseRunFilename(filename string) (string, bool) {
	if !strings.HasPrefix(filename, runFilePrefix) || !strings.HasSuffix(filename, runFileSuffix) {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(filename, runFilePrefix), runFileSuffix)
	if id == "" {
		return "", false
	}
	return id, true
}
