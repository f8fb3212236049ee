package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Yes).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var d time.Duration

	s = c.IUCN.Token
	if s != "" {
		res = append(res, OptIUCNToken(s))
	}
	s = c.IUCN.BaseURL
	if s != "" {
		res = append(res, OptIUCNBaseURL(s))
	}
	d = c.IUCN.Delay
	if d > 0 {
		res = append(res, OptIUCNDelay(d))
	}
	d = c.IUCN.Timeout
	if d > 0 {
		res = append(res, OptIUCNTimeout(d))
	}

	s = c.VNRedList.BaseURL
	if s != "" {
		res = append(res, OptVNRedListBaseURL(s))
	}
	d = c.VNRedList.Delay
	if d > 0 {
		res = append(res, OptVNRedListDelay(d))
	}
	d = c.VNRedList.Timeout
	if d > 0 {
		res = append(res, OptVNRedListTimeout(d))
	}
	s = c.VNRedList.UserAgent
	if s != "" {
		res = append(res, OptVNRedListUserAgent(s))
	}

	s = c.Data.Dir
	if s != "" {
		res = append(res, OptDataDir(s))
	}
	s = c.Data.IUCNFile
	if s != "" {
		res = append(res, OptDataIUCNFile(s))
	}
	s = c.Data.VNRedListFile
	if s != "" {
		res = append(res, OptDataVNRedListFile(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidURL(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	res := strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
	if !res {
		gn.Warn("<em>%s</em> must start with http:// or https://, ignoring '%s'",
			name, s)
	}
	return res
}

func isValidDelay(name string, d time.Duration) bool {
	res := d >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %s", name, d)
	}
	return res
}

func isValidTimeout(name string, d time.Duration) bool {
	res := d > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive duration, ignoring %s", name, d)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
