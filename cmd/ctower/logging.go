package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/ctower/logger"
)

const (
	logDir      = "logs"
	logFileName = "ctower.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the structured logger and the standard log package to
// dir/ctower.log when debug is set, rotating a file over maxLogSize first
// Without debug everything is discarded; the terminal is never written to
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		logger.Discard()
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Discard()
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("ctower-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.Discard()
		log.SetOutput(io.Discard)
		return nil
	}

	logger.Init(f, "debug", "text")
	log.SetOutput(f)
	return f
}
