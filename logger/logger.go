// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

// ------------------- logger initialization -------------------

// InitLogger creates or reinitializes the logging system. Output always goes
// to stdout; when dir is non-empty a timestamped log file is created in it
// and receives the same lines.
func InitLogger(dir string) error {
	var out io.Writer = os.Stdout

	if dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}

		logFileName := filepath.Join(dir, time.Now().Format("2006-01-02_15-04-05")+".log")
		file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
		if err != nil {
			return err
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	setOutput(out)
	return nil
}

// SetOutput points every level at w. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	setOutput(w)
}

func setOutput(w io.Writer) {
	Info = log.New(w, "INFO: ", flags)
	Warn = log.New(w, "WARN: ", flags)
	Error = log.New(w, "ERROR: ", flags)
	Debug = log.New(w, "DEBUG: ", flags)
}

// SetLogLevel adjusts the Debug logger's output depending on environment.
// Production discards debug lines; every other environment keeps them.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// stdout-only loggers until main calls InitLogger, so packages that log
// during tests or from the CLI never need a writable log directory
func init() {
	setOutput(os.Stdout)
}
