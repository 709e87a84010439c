package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess    = 0 // Dataset passed the quality gate
	ExitGateFailed = 1 // One or more records failed the gate
	ExitError      = 2 // Configuration or runtime error
)

// GateFailureError indicates the analysis ran to completion but records
// failed quality validation.
type GateFailureError struct {
	Message string
}

func (e *GateFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var gateErr *GateFailureError
		if errors.As(err, &gateErr) {
			os.Exit(ExitGateFailed)
		}

		os.Exit(ExitError)
	}
}
