// Package collect de-duplicates species records by scientific name.
package collect

import "github.com/gnames/conslaw/pkg/species"

// Dedup returns one record per scientific name in the order names were
// first seen. Records with empty names are dropped.
//
// When a name repeats, the first record is kept and its empty fields are
// filled from later records (first non-empty value wins). Law entries of
// all records are concatenated in input order; an entry identical to one
// already present is not added again.
func Dedup(records []species.Species) []species.Species {
	idx := make(map[string]int)
	res := make([]species.Species, 0, len(records))

	for _, v := range records {
		name := v.Name()
		if name == "" {
			continue
		}

		i, ok := idx[name]
		if !ok {
			rec := v.Clone()
			rec.ScientificName.Value = name
			rec.Laws = appendLaws(nil, v.Laws)
			idx[name] = len(res)
			res = append(res, rec)
			continue
		}

		res[i].FillEmpty(v)
		res[i].Laws = appendLaws(res[i].Laws, v.Laws)
	}
	return res
}

// Names returns scientific names of de-duplicated records.
func Names(records []species.Species) []string {
	recs := Dedup(records)
	res := make([]string, len(recs))
	for i, v := range recs {
		res[i] = v.Name()
	}
	return res
}

func appendLaws(dst, src []species.Law) []species.Law {
	if dst == nil {
		dst = make([]species.Law, 0, len(src))
	}
	for _, l := range src {
		if hasLaw(dst, l) {
			continue
		}
		dst = append(dst, l)
	}
	return dst
}

func hasLaw(laws []species.Law, l species.Law) bool {
	for _, v := range laws {
		if v == l {
			return true
		}
	}
	return false
}
