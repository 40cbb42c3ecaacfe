package commands

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// setupLogging points logrus at file, or nowhere when file is empty, since the
// game owns the terminal while it runs.
func setupLogging(level, file string) (func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	log.SetLevel(lvl)

	if file == "" {
		log.SetOutput(ioutil.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open log file %s", file)
	}
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.SetOutput(f)

	return func() {
		log.SetOutput(ioutil.Discard)
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("failed to close log file")
		}
	}, nil
}
