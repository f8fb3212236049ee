// Package format converts status query results into species records.
//
// Formatters are pure: they do not modify their inputs, and formatting the
// same input twice gives structurally identical records.
package format

import (
	"github.com/gnames/conslaw/pkg/species"
	"github.com/gnames/conslaw/pkg/status"
)

// Func builds a species record from the record a name was collected from
// and the result of its status query.
type Func func(src species.Species, res status.Result) species.Species

// IUCN builds a record of the IUCN status file. Taxonomy and the English
// common name come from IUCN, the Vietnamese common name stays empty until
// the merge step fills it. The law entry note is the assessment URL.
func IUCN(src species.Species, res status.Result) species.Species {
	name := res.ScientificName
	if name == "" {
		name = src.Name()
	}

	out := species.New(name)
	out.CommonNameEn = &species.Field{Value: res.CommonName}
	out.KingdomLatin = res.Taxonomy.Kingdom
	out.PhylumLatin = res.Taxonomy.Phylum
	out.ClassLatin = res.Taxonomy.Class
	out.OrderLatin = res.Taxonomy.Order
	out.FamilyLatin = res.Taxonomy.Family
	out.Laws = []species.Law{
		{
			Name:  species.LawIUCN,
			Value: res.Category,
			Note:  res.URL,
		},
	}
	return out
}

// VNRedList builds a record of the Vietnam Red List status file. It keeps
// the collected context (scientific name note, common name, taxonomy and
// note) and adds one law entry pointing to the species page.
func VNRedList(src species.Species, res status.Result) species.Species {
	out := src.Context()
	if out.ScientificName.Value == "" {
		out.ScientificName.Value = res.ScientificName
	}
	out.Laws = []species.Law{
		{
			Name:  species.LawVNRedList,
			Value: res.Category,
			Note:  res.URL,
		},
	}
	return out
}
