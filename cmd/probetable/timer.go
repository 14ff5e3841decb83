package main

import (
	"time"

	"go.uber.org/zap"
)

/*
	usage:

	func (a *app) foo() {
		defer a.timeThis(msg("foo"))
		// code to measure
	}
*/

func msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

func (a *app) timeThis(msg string, start time.Time) {
	a.log.Info(msg, zap.Duration("took", time.Since(start)))
}
