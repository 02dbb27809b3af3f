// Package logging provides the default core.Logger implementation. No
// repo in the retrieved example pack imports a structured-logging
// library (zerolog/zap/logrus), and the teacher itself wraps
// log.Printf directly — this adapter follows that same idiom.
package logging

import (
	"log"
	"os"

	"github.com/krrud/pathtracer-go/internal/core"
)

// Default wraps the standard library's *log.Logger to satisfy
// core.Logger.
type Default struct {
	l *log.Logger
}

// NewDefaultLogger returns a Logger that writes prefixed, timestamped
// lines to stderr, mirroring the teacher's own log.Printf usage.
func NewDefaultLogger() *Default {
	return &Default{l: log.New(os.Stderr, "pathtracer: ", log.LstdFlags)}
}

func (d *Default) Printf(format string, args ...interface{}) {
	d.l.Printf(format, args...)
}

// Noop discards everything. (The CLI's -quiet mode and the tests pass a
// nil core.Logger instead, which the scheduler also accepts.)
type Noop struct{}

func (Noop) Printf(string, ...interface{}) {}

var _ core.Logger = (*Default)(nil)
var _ core.Logger = Noop{}
