package ioiucn

import (
	"bytes"
	"strings"
)

// taxaResponse is the body of GET /taxa/scientific_name.
type taxaResponse struct {
	Taxon       taxon        `json:"taxon"`
	Assessments []assessment `json:"assessments"`
}

type taxon struct {
	SISID       flexString   `json:"sis_id"`
	KingdomName string       `json:"kingdom_name"`
	PhylumName  string       `json:"phylum_name"`
	ClassName   string       `json:"class_name"`
	OrderName   string       `json:"order_name"`
	FamilyName  string       `json:"family_name"`
	GenusName   string       `json:"genus_name"`
	SpeciesName string       `json:"species_name"`
	CommonNames []commonName `json:"common_names"`
}

type commonName struct {
	Name     string `json:"name"`
	Main     bool   `json:"main"`
	Language string `json:"language"`
}

type assessment struct {
	AssessmentID  flexString `json:"assessment_id"`
	Latest        bool       `json:"latest"`
	YearPublished flexString `json:"year_published"`
	URL           string     `json:"url"`
	CategoryCode  string     `json:"red_list_category_code"`
	Scopes        []scope    `json:"scopes"`
}

type scope struct {
	Description struct {
		EN string `json:"en"`
	} `json:"description"`
}

// flexString accepts JSON strings and numbers. IUCN returns ids as
// numbers and years as strings.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	*f = flexString(strings.Trim(string(data), `"`))
	return nil
}

// latest returns the assessment flagged as latest, or the first one.
func (r taxaResponse) latest() assessment {
	for _, v := range r.Assessments {
		if v.Latest {
			return v
		}
	}
	return r.Assessments[0]
}

// commonName returns the main common name, or the first one.
func (t taxon) commonName() string {
	for _, v := range t.CommonNames {
		if v.Main {
			return v.Name
		}
	}
	if len(t.CommonNames) > 0 {
		return t.CommonNames[0].Name
	}
	return ""
}

func (a assessment) scope() string {
	if len(a.Scopes) == 0 {
		return ""
	}
	return a.Scopes[0].Description.EN
}
