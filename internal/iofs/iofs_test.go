package iofs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/conslaw/pkg/templates"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "conslaw")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "conslaw",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")

	// idempotent
	err = EnsureDirs(tmpDir)
	require.NoError(t, err)
}

// TestTouchDir_ExistingDirectory verifies existing directory
// is not modified.
func TestTouchDir_ExistingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	existingDir := filepath.Join(tmpDir, "existing")

	err := os.MkdirAll(existingDir, 0700)
	require.NoError(t, err)

	err = touchDir(existingDir)
	require.NoError(t, err)

	info, err := os.Stat(existingDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

// TestEnsureTemplates verifies config.yaml and laws.yaml are
// created from embedded templates and never overwritten.
func TestEnsureTemplates(t *testing.T) {
	tests := []struct {
		name    string
		ensure  func(string) error
		file    string
		content string
	}{
		{
			name:    "config",
			ensure:  EnsureConfigFile,
			file:    "config.yaml",
			content: templates.ConfigYAML,
		},
		{
			name:    "laws",
			ensure:  EnsureLawsFile,
			file:    "laws.yaml",
			content: templates.LawsYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, EnsureDirs(tmpDir))

			err := tt.ensure(tmpDir)
			require.NoError(t, err)

			path := filepath.Join(tmpDir, ".config", "conslaw", tt.file)
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(content))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

			custom := "# custom\n"
			err = os.WriteFile(path, []byte(custom), 0644)
			require.NoError(t, err)

			err = tt.ensure(tmpDir)
			require.NoError(t, err)
			content, err = os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, custom, string(content),
				"Existing file should not be overwritten")
		})
	}
}

// TestReadSpecies verifies decoding of law data files.
func TestReadSpecies(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nd06_2019.json")
	data := `[
  {
    "scientific_name": {"value": "Panthera tigris", "note": ""},
    "common_name": {"value": "Hổ", "note": ""},
    "class_latin": "Mammalia",
    "class_vi": "Thú",
    "note": "",
    "laws": [{"name": "NĐ 06/2019", "value": "IB", "note": ""}]
  }
]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	res, err := ReadSpecies(path)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Panthera tigris", res[0].Name())
	assert.Equal(t, "Hổ", res[0].CommonName.Value)
	assert.Equal(t, "Thú", res[0].ClassVI)
	require.Len(t, res[0].Laws, 1)
	assert.Equal(t, "NĐ 06/2019", res[0].Laws[0].Name.VI)
	assert.Equal(t, "NĐ 06/2019", res[0].Laws[0].Name.EN)
}

// TestReadSpecies_Errors verifies error codes for missing and
// malformed files.
func TestReadSpecies_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	bad := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"a": 1}`), 0644))

	tests := []struct {
		name string
		path string
		code gn.ErrorCode
	}{
		{"missing", filepath.Join(tmpDir, "none.json"), errcode.ReadFileError},
		{"malformed", bad, errcode.DecodeJSONError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSpecies(tt.path)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
		})
	}
}

// TestWriteJSON verifies indentation, unescaped output and
// absence of temporary files.
func TestWriteJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out", "iucn_status.json")

	rec := species.New("Panthera tigris")
	rec.CommonName.Value = "Hổ"
	rec.Note = "<b>&</b>"

	err := WriteJSON(path, []species.Species{rec}, 4)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(content)
	assert.True(t, strings.HasPrefix(s, "[\n    {\n        \"scientific_name\""))
	assert.Contains(t, s, `"value": "Hổ"`)
	assert.Contains(t, s, `"note": "<b>&</b>"`)
	assert.Contains(t, s, `"laws": []`)
	assert.NotContains(t, s, "common_name_en")
	assert.True(t, strings.HasSuffix(s, "]\n"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be gone")

	back, err := ReadSpecies(path)
	require.NoError(t, err)
	assert.Equal(t, []species.Species{rec}, back)
}

// TestEncodeJSON_Indent verifies indentation step.
func TestEncodeJSON_Indent(t *testing.T) {
	res, err := EncodeJSON(map[string]int{"b": 2, "a": 1}, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}\n", string(res))
}
