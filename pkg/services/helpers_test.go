package services

import (
	"os"
	"path/filepath"
	"testing"

	"magazine-cms/pkg/logger"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// recordingLogger keeps warning messages and drops everything else.
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debug(string, ...logger.Field)      {}
func (l *recordingLogger) Info(string, ...logger.Field)       {}
func (l *recordingLogger) Warn(msg string, _ ...logger.Field) { l.warnings = append(l.warnings, msg) }
func (l *recordingLogger) Error(string, ...logger.Field)      {}
func (l *recordingLogger) With(...logger.Field) logger.Logger { return l }
func (l *recordingLogger) Sync() error                        { return nil }
