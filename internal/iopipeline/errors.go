package iopipeline

import (
	"fmt"

	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/gn"
)

// CancelledError is returned when a run is interrupted.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.CancelledError,
		Msg:  "Run was cancelled, no output was written",
		Err:  fmt.Errorf("pipeline cancelled: %w", err),
	}
}
