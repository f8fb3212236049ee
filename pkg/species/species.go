// Package species defines the canonical species record shared by law data
// files, status files and all processing steps.
//
// The scientific name is the de-duplication key everywhere. When records
// about the same species come from several sources, the first non-empty
// value of every field wins (see FillEmpty).
package species

import (
	"encoding/json"
	"strings"

	"github.com/gnames/gnuuid"
)

var (
	// LawIUCN labels law entries created from IUCN Red List assessments.
	LawIUCN = Bilingual{VI: "IUCN", EN: "IUCN"}

	// LawVNRedList labels law entries created from the Vietnam Red List.
	LawVNRedList = Bilingual{VI: "Danh lục Đỏ Việt Nam", EN: "Vietnam Red List"}
)

// Field is a value with an optional free-text note.
type Field struct {
	Value string `json:"value"`
	Note  string `json:"note"`
}

// Bilingual is a label in Vietnamese and English.
type Bilingual struct {
	VI string `json:"vi" yaml:"vi"`
	EN string `json:"en" yaml:"en"`
}

// UnmarshalJSON accepts either an object with "vi" and "en" keys or a
// plain string, which is used for both languages.
func (b *Bilingual) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.VI, b.EN = s, s
		return nil
	}
	type bilingual Bilingual
	var res bilingual
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	*b = Bilingual(res)
	return nil
}

// Law is one conservation-status assertion attributed to a regulatory or
// assessment source.
type Law struct {
	// Name of the source.
	Name Bilingual `json:"name"`
	// Value is the status code, for example "CR" or "IB".
	Value string `json:"value"`
	// Note is free text, often a source URL.
	Note string `json:"note"`
}

// Species is a record of a law data file or a status file.
type Species struct {
	ScientificName Field `json:"scientific_name"`
	CommonName     Field `json:"common_name"`

	// CommonNameEn is only present in IUCN status files.
	CommonNameEn *Field `json:"common_name_en,omitempty"`

	KingdomLatin string `json:"kingdom_latin"`
	KingdomVI    string `json:"kingdom_vi"`
	PhylumLatin  string `json:"phylum_latin"`
	PhylumVI     string `json:"phylum_vi"`
	ClassLatin   string `json:"class_latin"`
	ClassVI      string `json:"class_vi"`
	OrderLatin   string `json:"order_latin"`
	OrderVI      string `json:"order_vi"`
	FamilyLatin  string `json:"family_latin"`
	FamilyVI     string `json:"family_vi"`

	Note string `json:"note"`

	// Laws keep insertion order, which is the order of source precedence.
	Laws []Law `json:"laws"`
}

// New creates a record with only the scientific name set.
func New(name string) Species {
	return Species{
		ScientificName: Field{Value: strings.TrimSpace(name)},
		Laws:           []Law{},
	}
}

// Name returns the trimmed scientific name, the record key.
func (s Species) Name() string {
	return strings.TrimSpace(s.ScientificName.Value)
}

// ID returns UUID v5 generated from the scientific name.
func (s Species) ID() string {
	return gnuuid.New(s.Name()).String()
}

// Clone returns a deep copy of the record.
func (s Species) Clone() Species {
	res := s
	if s.CommonNameEn != nil {
		en := *s.CommonNameEn
		res.CommonNameEn = &en
	}
	if s.Laws != nil {
		res.Laws = make([]Law, len(s.Laws))
		copy(res.Laws, s.Laws)
	}
	return res
}

// Context returns a copy of the record without laws and English common
// name. It keeps scientific name, common name, taxonomy and note.
func (s Species) Context() Species {
	res := s.Clone()
	res.ScientificName.Value = s.Name()
	res.CommonNameEn = nil
	res.Laws = []Law{}
	return res
}

// FillEmpty copies into s every field that is empty in s and non-empty in
// other. Values already set in s are never replaced, so applying records in
// source order implements the first-non-empty-wins policy. Laws are not
// touched.
func (s *Species) FillEmpty(other Species) {
	fillField(&s.ScientificName, other.ScientificName)
	fillField(&s.CommonName, other.CommonName)
	if other.CommonNameEn != nil {
		if s.CommonNameEn == nil {
			s.CommonNameEn = &Field{}
		}
		fillField(s.CommonNameEn, *other.CommonNameEn)
	}

	fill(&s.KingdomLatin, other.KingdomLatin)
	fill(&s.KingdomVI, other.KingdomVI)
	fill(&s.PhylumLatin, other.PhylumLatin)
	fill(&s.PhylumVI, other.PhylumVI)
	fill(&s.ClassLatin, other.ClassLatin)
	fill(&s.ClassVI, other.ClassVI)
	fill(&s.OrderLatin, other.OrderLatin)
	fill(&s.OrderVI, other.OrderVI)
	fill(&s.FamilyLatin, other.FamilyLatin)
	fill(&s.FamilyVI, other.FamilyVI)
	fill(&s.Note, other.Note)
}

func fillField(dst *Field, src Field) {
	fill(&dst.Value, src.Value)
	fill(&dst.Note, src.Note)
}

func fill(dst *string, src string) {
	if strings.TrimSpace(*dst) != "" {
		return
	}
	if src = strings.TrimSpace(src); src != "" {
		*dst = src
	}
}
