package main

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"overcheck/pkg/check"
	"overcheck/pkg/output"
)

// ErrCheckOverflow is returned when a check detects an overflow.
var ErrCheckOverflow = errors.New("overflow detected")

// runCheck executes a check, prints the result, and returns an error on
// overflow. The returned error causes Cobra to exit with code 1.
func runCheck(c check.Checker) error {
	start := time.Now()
	result := c.Run()
	log.Debug().
		Str("check", result.Name).
		Str("status", string(result.Status)).
		Dur("elapsed", time.Since(start)).
		Msg("check complete")

	output.PrintResult(result)

	if !result.OK() {
		return ErrCheckOverflow
	}
	return nil
}
