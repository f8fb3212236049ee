package iocollect

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/gn"
)

// NoSpeciesError is returned when none of the input files gave a
// single species.
func NoSpeciesError(files []string) error {
	msg := `No species found

<em>Input files:</em>
%s

<em>How to fix:</em>
  1. Check that the files exist in the data directory
  2. Give file paths as arguments`

	lines := make([]string, len(files))
	for i, v := range files {
		lines[i] = "  - " + v
	}
	vars := []any{strings.Join(lines, "\n")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NoSpeciesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no species in %d files",
			fn, len(files)),
	}
}
