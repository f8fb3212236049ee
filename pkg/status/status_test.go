package status_test

import (
	"testing"

	"github.com/gnames/conslaw/pkg/status"
	"github.com/stretchr/testify/assert"
)

func TestResultConstructors(t *testing.T) {
	tests := []struct {
		msg      string
		res      status.Result
		outcome  status.Outcome
		category string
	}{
		{
			msg:      "success keeps code",
			res:      status.NewSuccess("Panthera tigris", "EN"),
			outcome:  status.Success,
			category: "EN",
		},
		{
			msg:      "success never has empty code",
			res:      status.NewSuccess("Panthera tigris", "  "),
			outcome:  status.Success,
			category: status.UnknownCategory,
		},
		{
			msg:      "not found uses sentinel",
			res:      status.NewNotFound("Panthera tigris"),
			outcome:  status.NotFound,
			category: status.NotFoundCategory,
		},
		{
			msg:      "http error",
			res:      status.NewHTTPError("Panthera tigris", 503),
			outcome:  status.Error,
			category: status.ErrorCategory,
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.outcome, v.res.Outcome, v.msg)
		assert.Equal(t, v.category, v.res.Category, v.msg)
		assert.NotEmpty(t, v.res.Category, v.msg)
	}
}

func TestIsUnauthorized(t *testing.T) {
	res := status.NewError("Panthera tigris", status.Unauthorized,
		"Unauthorized - check your API token")
	assert.True(t, res.IsUnauthorized())
	assert.NotEqual(t, status.NotFound, res.Outcome)

	res = status.NewHTTPError("Panthera tigris", 500)
	assert.False(t, res.IsUnauthorized())
	assert.Equal(t, "HTTP 500", res.Error)
}

func TestCache(t *testing.T) {
	c := status.NewCache()
	assert.Equal(t, 0, c.Len())

	_, ok := c.Get("Elephas maximus")
	assert.False(t, ok)

	c.Set("Elephas maximus", status.NewSuccess("Elephas maximus", "CR"))
	c.Set("Bos sauveli", status.NewNotFound("Bos sauveli"))

	res, ok := c.Get("Elephas maximus")
	assert.True(t, ok)
	assert.Equal(t, "CR", res.Category)

	res, ok = c.Get("Bos sauveli")
	assert.True(t, ok)
	assert.Equal(t, status.NotFound, res.Outcome)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Hits())
}
