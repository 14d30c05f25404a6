package logger

import (
	"io"
	"log"
	"os"
)

// New returns a logger writing to stderr, or appending to the file at path.
// The returned closer releases the file, if any.
func New(path string) (l *log.Logger, closer io.Closer, err error) {
	if len(path) == 0 {
		l = log.New(os.Stderr, "vm16 ", log.Ltime|log.Lshortfile)
		closer = io.NopCloser(nil)
		return
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return
	}

	l = log.New(f, "vm16 ", log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("logging to %v", path)
	closer = f

	return
}
