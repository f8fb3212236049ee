package ioimages

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/gn"
)

func ReadError(path string, err error) error {
	msg := "Cannot read image sheet <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImagesReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func ColumnError(path string, missing []string) error {
	msg := "Image sheet <em>%s</em> misses columns: %s"
	cols := strings.Join(missing, ", ")
	vars := []any{path, cols}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ImagesColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: missing columns %s", fn, cols),
	}
}
