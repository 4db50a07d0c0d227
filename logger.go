package visualizationtools

import (
	"log"
	"os"
)

// Package loggers. Callers may replace them, e.g. to route messages
// through the loggers of a command.
var (
	Info = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
)
