package game

import "github.com/sirupsen/logrus"

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used by the game package.
func SetLogger(logger logrus.FieldLogger) {
	log = logger
}
