package iomerge

import (
	"fmt"
	"runtime"

	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/gn"
)

// TargetNotFoundError is returned when the status file to update does
// not exist.
func TargetNotFoundError(path string) error {
	msg := `Status file <em>%s</em> not found

<em>How to fix:</em>
  Run <em>conslaw iucn</em> first to create it`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MergeTargetNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: file %s does not exist", fn, path),
	}
}
