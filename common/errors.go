package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")

	// the mle optimization failed or the sample can not support a fit,
	// recovered per window, the other windows keep running
	ErrorFitNotConverged = errors.New("gev fit not converged")

	// series too short for the requested window, recovered per window
	ErrorInsufficientData = errors.New("insufficient data")

	// metadata and observation tables don't agree, fatal for the whole run
	ErrorMalformedInput = errors.New("malformed input table")
)
