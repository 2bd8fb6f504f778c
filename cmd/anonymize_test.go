package cmd

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lepinkainen/fileanonymizer/anonymize"
	"github.com/lepinkainen/fileanonymizer/logging"
	"github.com/lepinkainen/fileanonymizer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(dir string) (*AnonymizeCmd, *bytes.Buffer) {
	var buf bytes.Buffer
	return &AnonymizeCmd{
		Directory: dir,
		Algorithm: "sha256",
		Prefix:    "anonymized_",
		console:   &buf,
	}, &buf
}

func expectedName(original, prefix, ext string) string {
	sum := sha256.Sum256([]byte(original))
	return prefix + hex.EncodeToString(sum[:]) + ext
}

func TestAnonymizeCmd_Run(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.txt"), []byte("data"), 0o644))

	cmd, buf := newTestCmd(dir)
	require.NoError(t, cmd.Run(&types.AppContext{Version: "1.2.3"}))

	newName := expectedName("report.txt", "anonymized_", ".txt")
	assert.FileExists(t, filepath.Join(dir, newName))
	assert.NoFileExists(t, filepath.Join(dir, "report.txt"))

	out := buf.String()
	assert.Contains(t, out, "File Anonymizer 1.2.3")
	assert.Contains(t, out, " - INFO - Renamed 'report.txt' to '"+newName+"'")
	assert.Contains(t, out, "processed 1 entries: 1 renamed, 0 previewed, 0 skipped, 0 failed")
}

func TestAnonymizeCmd_DryRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.txt"), []byte("data"), 0o644))

	cmd, buf := newTestCmd(dir)
	cmd.DryRun = true
	cmd.Progress = true
	require.NoError(t, cmd.Run(nil))

	assert.FileExists(t, filepath.Join(dir, "report.txt"))
	newName := expectedName("report.txt", "anonymized_", ".txt")
	assert.NoFileExists(t, filepath.Join(dir, newName))
	assert.Contains(t, buf.String(), "[Dry Run] Would rename 'report.txt' to '"+newName+"'")
	assert.Contains(t, buf.String(), "DRY RUN MODE")
}

func TestAnonymizeCmd_InvalidDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	cmd, buf := newTestCmd(missing)

	err := cmd.Run(nil)
	var dirErr *anonymize.InvalidDirectoryError
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, missing, dirErr.Path)
	assert.Contains(t, buf.String(), " - ERROR - directory '"+missing+"' does not exist or is not a directory")
	assert.Equal(t, 1, strings.Count(buf.String(), "does not exist or is not a directory"))
	assert.NotContains(t, buf.String(), "File Anonymizer")
}

func TestAnonymizeCmd_ProgressHidesInfoOnConsole(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	logPath := filepath.Join(t.TempDir(), "run.log")

	cmd, buf := newTestCmd(dir)
	cmd.Progress = true
	cmd.LogFile = logPath
	require.NoError(t, cmd.Run(nil))

	newName := expectedName("a.txt", "anonymized_", ".txt")
	assert.FileExists(t, filepath.Join(dir, newName))
	assert.NotContains(t, buf.String(), "Renamed 'a.txt'")
	// console records resume after the bar finishes
	assert.Contains(t, buf.String(), " - INFO - processed 1 entries")
	assert.Contains(t, buf.String(), "Log file: "+logPath)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), " - INFO - Renamed 'a.txt' to '"+newName+"'")
}

func TestAnonymizeCmd_UsesBoundLogger(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	var logs bytes.Buffer
	logger := logging.New(&logs)
	cmd, console := newTestCmd(dir)
	require.NoError(t, cmd.Run(&types.AppContext{Version: "test", Logger: logger}))

	assert.Contains(t, logs.String(), " - INFO - Renamed 'a.txt'")
	assert.NotContains(t, console.String(), " - INFO - ")
}

func TestAnonymizeCmd_PerFileFailuresDoNotFail(t *testing.T) {
	dir := t.TempDir()
	occupied := expectedName("a.txt", "z_", ".txt")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, occupied), []byte("occupant"), 0o644))

	cmd, buf := newTestCmd(dir)
	cmd.Prefix = "z_"
	require.NoError(t, cmd.Run(nil))

	assert.FileExists(t, filepath.Join(dir, "a.txt"))
	assert.Contains(t, buf.String(), "target already exists")
	assert.Contains(t, buf.String(), "1 failed")
}

func TestAnonymizeCmd_LogFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0o644))
	logPath := filepath.Join(t.TempDir(), "logs", "anonymizer.log")

	cmd, _ := newTestCmd(dir)
	cmd.LogFile = logPath
	cmd.Algorithm = "md5"
	require.NoError(t, cmd.Run(nil))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), " - INFO - Renamed 'a.log' to 'anonymized_")
	assert.Contains(t, string(data), "processed 1 entries")
	assert.NotContains(t, string(data), "\x1b[")
}

func TestAnonymizeCmd_UnknownAlgorithm(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))

	cmd, _ := newTestCmd(dir)
	cmd.Algorithm = "crc32"

	err := cmd.Run(nil)
	assert.ErrorIs(t, err, anonymize.ErrUnsupportedAlgorithm)
	assert.FileExists(t, filepath.Join(dir, "a.txt"))
}
