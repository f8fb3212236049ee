package templates_test

import (
	"testing"

	"github.com/gnames/conslaw/pkg/laws"
	"github.com/gnames/conslaw/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLawsYAML(t *testing.T) {
	var cfg laws.LawsConfig
	err := yaml.Unmarshal([]byte(templates.LawsYAML), &cfg)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, []string{
		"nd160_2013.json",
		"nd06_2019.json",
		"nd64_2019.json",
		"nd84_2021.json",
		"tt27_2025.json",
	}, cfg.Files())

	l, ok := cfg.ByID("tt27")
	require.True(t, ok)
	assert.Equal(t, "Thông tư 27/2025/TT-BNNMT", l.Name.VI)
	assert.Equal(t, "TT 27/2025", l.ShortName.VI)
}

func TestConfigYAML(t *testing.T) {
	var m map[string]any
	err := yaml.Unmarshal([]byte(templates.ConfigYAML), &m)
	require.NoError(t, err)
	for _, v := range []string{"iucn", "vnredlist", "data", "log"} {
		assert.Contains(t, m, v)
	}
}
