// Package ioexport saves species from law data files and status files
// into a SQLite database.
package ioexport

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/conslaw/internal/iocollect"
	"github.com/gnames/conslaw/pkg/laws"
	"github.com/gnames/conslaw/pkg/species"
	_ "modernc.org/sqlite"
)

// Result describes one export.
type Result struct {
	Documents int
	Species   int
	Laws      int
	Collect   iocollect.Stats
}

// Exporter writes a SQLite database with documents, species and laws
// tables.
type Exporter struct {
	path        string
	laws        *laws.LawsConfig
	statusFiles []string
}

// New creates an Exporter. Species are read from law data files of the
// registry first and from status files after them. When the same species
// is in several files, the first non-empty value of every field wins and
// law entries of all files are kept.
func New(path string, lawsCfg *laws.LawsConfig, statusFiles ...string) *Exporter {
	return &Exporter{path: path, laws: lawsCfg, statusFiles: statusFiles}
}

// Export creates the database. An existing file at the path is replaced
// only after the new database is complete.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	var res Result

	files := append(e.laws.Files(), e.statusFiles...)
	recs, stats := iocollect.New(files...).Collect()
	res.Collect = stats
	if len(recs) == 0 {
		return res, iocollect.NoSpeciesError(files)
	}

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return res, OpenError(e.path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(e.path)+".*")
	if err != nil {
		return res, OpenError(e.path, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	db, err := sql.Open("sqlite", tmpPath)
	if err != nil {
		return res, OpenError(e.path, err)
	}

	res, err = e.write(ctx, db, recs, res)
	if cerr := db.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return res, WriteError(e.path, err)
	}

	if err = os.Rename(tmpPath, e.path); err != nil {
		return res, WriteError(e.path, err)
	}

	slog.Info("Exported species",
		"path", e.path,
		"documents", res.Documents,
		"species", res.Species,
		"laws", res.Laws,
	)
	return res, nil
}

func (e *Exporter) write(
	ctx context.Context,
	db *sql.DB,
	recs []species.Species,
	res Result,
) (Result, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return res, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	for i, v := range e.laws.Laws {
		_, err = tx.ExecContext(ctx, insertDocument,
			v.ID, i, v.File, v.Name.VI, v.Name.EN,
			v.ShortName.VI, v.ShortName.EN, v.URL,
		)
		if err != nil {
			return res, err
		}
		res.Documents++
	}

	spStmt, err := tx.PrepareContext(ctx, insertSpecies)
	if err != nil {
		return res, err
	}
	defer spStmt.Close()

	lawStmt, err := tx.PrepareContext(ctx, insertLaw)
	if err != nil {
		return res, err
	}
	defer lawStmt.Close()

	for _, v := range recs {
		id := v.ID()
		var en string
		if v.CommonNameEn != nil {
			en = v.CommonNameEn.Value
		}
		_, err = spStmt.ExecContext(ctx,
			id, v.Name(), v.ScientificName.Note,
			v.CommonName.Value, v.CommonName.Note, en,
			v.KingdomLatin, v.KingdomVI, v.PhylumLatin, v.PhylumVI,
			v.ClassLatin, v.ClassVI, v.OrderLatin, v.OrderVI,
			v.FamilyLatin, v.FamilyVI, v.Note,
		)
		if err != nil {
			return res, err
		}
		res.Species++

		for i, l := range v.Laws {
			_, err = lawStmt.ExecContext(ctx,
				id, i, l.Name.VI, l.Name.EN, l.Value, l.Note,
			)
			if err != nil {
				return res, err
			}
			res.Laws++
		}
	}

	if err = tx.Commit(); err != nil {
		return res, err
	}
	return res, nil
}
