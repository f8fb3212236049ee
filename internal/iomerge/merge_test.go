package iomerge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/conslaw/internal/iofs"
	"github.com/gnames/conslaw/internal/iomerge"
	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lawRecord(name, common string) species.Species {
	res := species.New(name)
	res.CommonName.Value = common
	return res
}

func iucnRecord(name, en, code string) species.Species {
	res := species.New(name)
	res.CommonNameEn = &species.Field{Value: en}
	res.Laws = []species.Law{{Name: species.LawIUCN, Value: code}}
	return res
}

func setup(t *testing.T) (string, []string) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "nd06_2019.json")
	f2 := filepath.Join(dir, "nd64_2019.json")
	target := filepath.Join(dir, "iucn_status.json")

	err := iofs.WriteJSON(f1, []species.Species{
		lawRecord("Panthera tigris", "Hổ"),
		lawRecord("Manis javanica", ""),
	}, 2)
	require.NoError(t, err)

	err = iofs.WriteJSON(f2, []species.Species{
		lawRecord("Panthera tigris", ""),
		lawRecord("Manis javanica", "Tê tê java"),
	}, 2)
	require.NoError(t, err)

	tiger := iucnRecord("Panthera tigris", "Tiger", "EN")
	pangolin := iucnRecord("Manis javanica", "Sunda Pangolin", "CR")
	saola := species.New("Pseudoryx nghetinhensis")
	saola.Laws = []species.Law{{Name: species.LawIUCN, Value: "CR"}}

	err = iofs.WriteJSON(target, []species.Species{tiger, pangolin, saola}, 4)
	require.NoError(t, err)

	missing := filepath.Join(dir, "nd84_2021.json")
	return target, []string{f1, missing, f2}
}

func TestMerge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	target, laws := setup(t)
	res, err := iomerge.New(target, laws...).Merge()
	require.NoError(t, err)

	assert.Equal(t, 2, res.Indexed)
	require.Len(t, res.Files, 2)
	assert.Equal(t, 1, res.Files[0].Names)
	assert.Equal(t, 3, res.Stats.Total)
	assert.Equal(t, 2, res.Stats.Matched)
	assert.Len(t, res.Examples, 3)

	recs, err := iofs.ReadSpecies(target)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "Hổ", recs[0].CommonName.Value,
		"name from the first file wins")
	assert.Equal(t, "Tiger", recs[0].CommonNameEn.Value)
	assert.Equal(t, "EN", recs[0].Laws[0].Value)

	assert.Equal(t, "Tê tê java", recs[1].CommonName.Value)

	assert.Equal(t, species.Field{}, recs[2].CommonName)
	require.NotNil(t, recs[2].CommonNameEn)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"common_name": {
            "value": "",`, "explicit empty value")
}

func TestMergeIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	target, laws := setup(t)
	m := iomerge.New(target, laws...)

	_, err := m.Merge()
	require.NoError(t, err)
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	_, err = m.Merge()
	require.NoError(t, err)
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestMergeNoTarget(t *testing.T) {
	dir := t.TempDir()
	_, err := iomerge.New(filepath.Join(dir, "iucn_status.json")).Merge()
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MergeTargetNotFoundError, gnErr.Code)
}
