package iofs

import (
	"os"
	"path/filepath"

	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/gnfmt"
	jsoniter "github.com/json-iterator/go"
)

// ReadSpecies decodes a JSON array of species records.
func ReadSpecies(path string) ([]species.Species, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}

	var res []species.Species
	enc := gnfmt.GNjson{}
	if err = enc.Decode(data, &res); err != nil {
		return nil, DecodeJSONError(path, err)
	}
	return res, nil
}

// EncodeJSON renders v as indented JSON with a trailing newline. HTML
// characters and non-ASCII text are written as is.
func EncodeJSON(v any, indent int) ([]byte, error) {
	api := jsoniter.Config{
		EscapeHTML:    false,
		SortMapKeys:   true,
		IndentionStep: indent,
	}.Froze()

	res, err := api.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append(res, '\n'), nil
}

// WriteJSON writes v to path as indented JSON. The data go to a temporary
// file in the same directory first, which is then renamed to path, so an
// interrupted write never leaves a truncated file behind.
func WriteJSON(path string, v any, indent int) error {
	data, err := EncodeJSON(v, indent)
	if err != nil {
		return WriteFileError(path, err)
	}

	dir := filepath.Dir(path)
	if err = touchDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return WriteFileError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return WriteFileError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
