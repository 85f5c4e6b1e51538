package childprocess

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "childprocess: ", log.LstdFlags)

// SetLogger replaces the package logger. Logging is discarded by default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger = l
}
