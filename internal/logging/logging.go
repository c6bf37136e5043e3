package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// New returns a logger with sane defaults for the CLI. Each logger carries
// a fresh run id so interleaved CI logs from repeated invocations can be
// told apart.
func New(out io.Writer, verbose bool) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log.WithField("run", uuid.NewString()[:8])
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that only want the terminal summary.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
