package iolaws

import (
	"fmt"

	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/gn"
)

// LawsConfigError creates an error for when laws.yaml
// cannot be loaded.
func LawsConfigError(path string, err error) error {
	msg := `Cannot load laws configuration

<em>Configuration file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Missing id or file of a law
  - Permission denied

<em>How to fix:</em>
  1. Check the file: <em>cat %s</em>
  2. Validate YAML syntax
  3. Remove the file to restore the default registry`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.LawsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load laws config: %w", err),
	}
}
