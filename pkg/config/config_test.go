package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/conslaw/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "conslaw"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "conslaw", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "conslaw", "config.yaml"),
		},
		{
			msg: "laws file",
			fn:  config.LawsFilePath,
			res: filepath.Join(tempHome, ".config", "conslaw", "laws.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, config.PlaceholderToken, cfg.IUCN.Token)
		assert.Equal(t, "https://api.iucnredlist.org/api/v4", cfg.IUCN.BaseURL)
		assert.Equal(t, 500*time.Millisecond, cfg.IUCN.Delay)
		assert.Equal(t, 10*time.Second, cfg.IUCN.Timeout)

		assert.Equal(t, "http://vnredlist.vast.vn", cfg.VNRedList.BaseURL)
		assert.Equal(t, 1500*time.Millisecond, cfg.VNRedList.Delay)
		assert.Equal(t, 30*time.Second, cfg.VNRedList.Timeout)
		assert.Contains(t, cfg.VNRedList.UserAgent, "Mozilla")

		assert.Equal(t, "iucn_status.json", cfg.Data.IUCNFile)
		assert.Equal(t, "vnredlist_status.json", cfg.Data.VNRedListFile)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.False(t, cfg.HasToken())
	})
}

func TestOptionIUCNToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		hasToken bool
	}{
		{
			name:     "sets token",
			input:    "abc123",
			expected: "abc123",
			hasToken: true,
		},
		{
			name:     "trims whitespace",
			input:    "  abc123\n",
			expected: "abc123",
			hasToken: true,
		},
		{
			name:     "ignores empty string",
			input:    "   ",
			expected: config.PlaceholderToken,
			hasToken: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptIUCNToken(tt.input)})
			assert.Equal(t, tt.expected, cfg.IUCN.Token)
			assert.Equal(t, tt.hasToken, cfg.HasToken())
		})
	}
}

func TestOptionBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "http://localhost:8080",
			expected: "http://localhost:8080",
		},
		{
			name:     "drops trailing slash",
			input:    "https://example.org/api/",
			expected: "https://example.org/api",
		},
		{
			name:     "ignores url without scheme",
			input:    "example.org",
			expected: "http://vnredlist.vast.vn",
		},
		{
			name:     "ignores empty",
			input:    "",
			expected: "http://vnredlist.vast.vn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptVNRedListBaseURL(tt.input)})
			assert.Equal(t, tt.expected, cfg.VNRedList.BaseURL)
		})
	}
}

func TestOptionDurations(t *testing.T) {
	tests := []struct {
		name string
		opt  config.Option
		get  func(*config.Config) time.Duration
		want time.Duration
	}{
		{
			name: "zero delay allowed",
			opt:  config.OptIUCNDelay(0),
			get:  func(c *config.Config) time.Duration { return c.IUCN.Delay },
			want: 0,
		},
		{
			name: "negative delay ignored",
			opt:  config.OptVNRedListDelay(-time.Second),
			get:  func(c *config.Config) time.Duration { return c.VNRedList.Delay },
			want: 1500 * time.Millisecond,
		},
		{
			name: "zero timeout ignored",
			opt:  config.OptIUCNTimeout(0),
			get:  func(c *config.Config) time.Duration { return c.IUCN.Timeout },
			want: 10 * time.Second,
		},
		{
			name: "positive timeout set",
			opt:  config.OptVNRedListTimeout(5 * time.Second),
			get:  func(c *config.Config) time.Duration { return c.VNRedList.Timeout },
			want: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.want, tt.get(cfg))
		})
	}
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("STDERR")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("printer")})
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestDataPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDataDir("src/lib")})

	assert.Equal(t, filepath.Join("src", "lib", "nd06_2019.json"),
		cfg.DataPath("nd06_2019.json"))
	assert.Equal(t, filepath.Join("src", "lib", "iucn_status.json"),
		cfg.IUCNPath())
	assert.Equal(t, filepath.Join("src", "lib", "vnredlist_status.json"),
		cfg.VNRedListPath())

	abs := filepath.Join(t.TempDir(), "x.json")
	assert.Equal(t, abs, cfg.DataPath(abs))
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptIUCNToken("tok"),
		config.OptIUCNDelay(2 * time.Second),
		config.OptDataDir("data"),
		config.OptLogFormat("text"),
		config.OptYes(true),
		config.OptHomeDir("/home/user"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "tok", dst.IUCN.Token)
	assert.Equal(t, 2*time.Second, dst.IUCN.Delay)
	assert.Equal(t, "data", dst.Data.Dir)
	assert.Equal(t, "text", dst.Log.Format)

	// runtime-only fields are not carried over
	assert.False(t, dst.Yes)
	assert.Empty(t, dst.HomeDir)
}
