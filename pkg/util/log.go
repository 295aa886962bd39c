/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Logger is a backoff.Notify that reports each failed attempt
func Logger(err error, d time.Duration) {
	log.WithError(err).WithField("retry", d).Warn("operation failed, retrying")
}

// SetupLogging configures the standard logrus logger from a level name
func SetupLogging(level string) error {
	if level == "" {
		level = "info"
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %s", level)
	}

	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return nil
}

// Component returns a logger entry scoped to a named component
func Component(name string) *log.Entry {
	return log.WithField("component", name)
}
