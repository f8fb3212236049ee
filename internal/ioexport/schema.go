package ioexport

const schema = `
CREATE TABLE documents (
	id         TEXT PRIMARY KEY,
	position   INTEGER NOT NULL,
	file       TEXT NOT NULL,
	name_vi    TEXT NOT NULL,
	name_en    TEXT NOT NULL,
	short_vi   TEXT NOT NULL,
	short_en   TEXT NOT NULL,
	url        TEXT NOT NULL
);

CREATE TABLE species (
	id                   TEXT PRIMARY KEY,
	scientific_name      TEXT NOT NULL UNIQUE,
	scientific_name_note TEXT NOT NULL,
	common_name          TEXT NOT NULL,
	common_name_note     TEXT NOT NULL,
	common_name_en       TEXT NOT NULL,
	kingdom_latin        TEXT NOT NULL,
	kingdom_vi           TEXT NOT NULL,
	phylum_latin         TEXT NOT NULL,
	phylum_vi            TEXT NOT NULL,
	class_latin          TEXT NOT NULL,
	class_vi             TEXT NOT NULL,
	order_latin          TEXT NOT NULL,
	order_vi             TEXT NOT NULL,
	family_latin         TEXT NOT NULL,
	family_vi            TEXT NOT NULL,
	note                 TEXT NOT NULL
);

CREATE TABLE laws (
	species_id TEXT NOT NULL REFERENCES species (id),
	position   INTEGER NOT NULL,
	name_vi    TEXT NOT NULL,
	name_en    TEXT NOT NULL,
	value      TEXT NOT NULL,
	note       TEXT NOT NULL,
	PRIMARY KEY (species_id, position)
);

CREATE INDEX laws_value_idx ON laws (value);
`

const insertDocument = `
INSERT INTO documents
	(id, position, file, name_vi, name_en, short_vi, short_en, url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const insertSpecies = `
INSERT INTO species (
	id, scientific_name, scientific_name_note,
	common_name, common_name_note, common_name_en,
	kingdom_latin, kingdom_vi, phylum_latin, phylum_vi,
	class_latin, class_vi, order_latin, order_vi,
	family_latin, family_vi, note
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const insertLaw = `
INSERT INTO laws (species_id, position, name_vi, name_en, value, note)
VALUES (?, ?, ?, ?, ?, ?)`
