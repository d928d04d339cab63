package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileName  = "server.log"
	logMaxSizeMB = 100
	logMaxAgeDay = 30
)

// SetupLogFile opens a size-rotated log file in dir that keeps at most
// maxFiles rotated backups. The caller must close it.
func SetupLogFile(dir string, maxFiles int) (io.WriteCloser, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, logFileName),
		MaxSize:    logMaxSizeMB,
		MaxBackups: maxFiles,
		MaxAge:     logMaxAgeDay,
		Compress:   true,
	}, nil
}
