// Package sciname normalizes scientific names for remote lookups.
// This is a pure package - parsing is computation, not I/O.
//
// Page slugs and query tokens are taken from the verbatim words of a name
// after author/year and rank tails are cut by regular expressions.
// gnparser only refines tokens of names that already have two words.
package sciname

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// ErrTooFewTokens is returned by Split for uninomials and empty names.
var ErrTooFewTokens = errors.New(
	"invalid scientific name format (needs at least genus and species)",
)

var (
	authorYearRe = regexp.MustCompile(`\s+[A-Z][a-z]+.*\d{4}.*$`)
	rankRe       = regexp.MustCompile(`\s+(var\.|subsp\.|ssp\.|f\.).*$`)
)

// Tokens are the parts of a name used by the IUCN taxa query.
type Tokens struct {
	Genus   string
	Species string
	// Infra is the infraspecific epithet, empty for binomials.
	Infra string
}

// Normalizer turns verbatim scientific names into canonical forms and
// URL slugs. It is not safe for concurrent use.
type Normalizer struct {
	parser gnparser.GNparser
}

// New creates a Normalizer with default gnparser settings.
func New() *Normalizer {
	cfg := gnparser.NewConfig()
	return &Normalizer{parser: gnparser.New(cfg)}
}

// NewWithCode creates a Normalizer that parses names according to the
// given nomenclatural code.
func NewWithCode(code nomcode.Code) *Normalizer {
	cfg := gnparser.NewConfig(gnparser.OptCode(code))
	return &Normalizer{parser: gnparser.New(cfg)}
}

// Canonical returns the name without authors and years. Infraspecific
// epithets are kept, rank markers are removed.
func (n *Normalizer) Canonical(name string) string {
	name = collapse(name)
	if name == "" {
		return ""
	}
	p := n.parser.ParseName(name)
	if p.Parsed && p.Canonical != nil && p.Canonical.Simple != "" {
		return p.Canonical.Simple
	}
	return stripAuthors(name)
}

// Normalize returns the form used to address species pages: the
// author/year tail is removed, then infraspecific ranks ("var.",
// "subsp.", "f.") with everything after them. Other words, "spp." or
// parentheses included, are kept as they are.
//
// Normalize is idempotent.
func (n *Normalizer) Normalize(name string) string {
	name = stripAuthors(name)
	return collapse(rankRe.ReplaceAllString(name, ""))
}

// Slug converts a name to the lowercase, hyphenated path segment of its
// page, e.g. "Elephas maximus" becomes "elephas-maximus".
func (n *Normalizer) Slug(name string) string {
	return Slugify(n.Normalize(name))
}

// Split returns genus, species and infraspecific epithet of a name
// without its author/year tail. Names with less than two words return
// ErrTooFewTokens. When the gnparser canonical form keeps at least two
// words, it is used to drop rank markers and authors without years.
func (n *Normalizer) Split(name string) (Tokens, error) {
	var res Tokens
	name = stripAuthors(name)
	words := strings.Fields(name)
	if len(words) < 2 {
		return res, ErrTooFewTokens
	}
	if canonical := strings.Fields(n.Canonical(name)); len(canonical) >= 2 {
		words = canonical
	}
	res.Genus = words[0]
	res.Species = words[1]
	if len(words) > 2 {
		res.Infra = words[2]
	}
	return res, nil
}

// Slugify lowercases a name and joins its words with hyphens without
// any other normalization.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func stripAuthors(name string) string {
	name = collapse(name)
	return collapse(authorYearRe.ReplaceAllString(name, ""))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
