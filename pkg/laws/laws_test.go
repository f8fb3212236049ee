package laws_test

import (
	"testing"

	"github.com/gnames/conslaw/pkg/laws"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const lawsYAML = `
laws:
  - id: nd160
    file: nd160_2013.json
    name:
      vi: Nghị định 160/2013/NĐ-CP
      en: Decree 160/2013/ND-CP
    url: https://chinhphu.vn/default.aspx?pageid=27160&docid=170893
  - id: nd06
    file: nd06_2019.json
    name:
      vi: Nghị định 06/2019/NĐ-CP
      en: Decree 06/2019/ND-CP
`

func TestValidate(t *testing.T) {
	var cfg laws.LawsConfig
	err := yaml.Unmarshal([]byte(lawsYAML), &cfg)
	require.NoError(t, err)

	err = cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, []string{"nd160_2013.json", "nd06_2019.json"}, cfg.Files())

	l, ok := cfg.ByID("nd06")
	assert.True(t, ok)
	assert.Equal(t, "Decree 06/2019/ND-CP", l.Name.EN)

	_, ok = cfg.ByID("nd99")
	assert.False(t, ok)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		msg  string
		laws []laws.Law
		err  string
	}{
		{"empty", nil, "no laws"},
		{"no id", []laws.Law{{File: "a.json"}}, "id is required"},
		{"bad id", []laws.Law{{ID: "ND 06", File: "a.json"}}, "lowercase"},
		{"no file", []laws.Law{{ID: "nd06"}}, "file is required"},
		{
			"duplicate id",
			[]laws.Law{{ID: "nd06", File: "a.json"}, {ID: "nd06", File: "b.json"}},
			"duplicate id",
		},
	}

	for _, v := range tests {
		cfg := laws.LawsConfig{Laws: v.laws}
		err := cfg.Validate()
		require.Error(t, err, v.msg)
		assert.Contains(t, err.Error(), v.err, v.msg)
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := laws.LawsConfig{
		Laws: []laws.Law{
			{ID: "nd06", File: "a.json", URL: "ftp://example.org"},
			{ID: "nd64", File: "a.json", Name: species.Bilingual{EN: "Decree 64"}},
		},
	}
	err := cfg.Validate()
	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 3)

	assert.Equal(t, "name", cfg.Warnings[0].Field)
	assert.Equal(t, species.Bilingual{VI: "nd06", EN: "nd06"}, cfg.Laws[0].Name)
	assert.Equal(t, "url", cfg.Warnings[1].Field)
	assert.Equal(t, "file", cfg.Warnings[2].Field)
}
