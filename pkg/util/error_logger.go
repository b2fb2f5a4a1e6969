package util

import (
	"log"
)

// ErrorLogger may be used to report errors. Implementations may decide
// to log, collect or discard them. It is used in places where a problem
// does not cause the operation at hand to fail, such as a mismatch
// found while comparing path splitters.
type ErrorLogger interface {
	Log(err error)
}

type defaultErrorLogger struct{}

func (defaultErrorLogger) Log(err error) {
	log.Print(err)
}

// DefaultErrorLogger writes errors using Go's standard logging package.
var DefaultErrorLogger ErrorLogger = defaultErrorLogger{}
