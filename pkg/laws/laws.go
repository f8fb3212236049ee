// Package laws provides the schema and validation of laws.yaml, the
// registry of Vietnamese law data files.
//
// Every law data file is a JSON array of species records protected by one
// legal document (decree or circular). The registry gives each file an id,
// a bilingual name and the URL of the official text.
package laws

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gnames/conslaw/pkg/species"
)

var idRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// Laws loads the registry of law data files.
type Laws interface {
	Load() (*LawsConfig, error)
}

// LawsConfig represents the complete laws.yaml file.
type LawsConfig struct {
	// Laws are listed in the order of source precedence.
	Laws []Law `yaml:"laws"`

	// Warnings holds non-fatal validation warnings (not serialized)
	Warnings []ValidationWarning `yaml:"-"`
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	LawID   string
	Field   string
	Message string
}

// Law describes one legal document and its data file.
type Law struct {
	// ID is a short identifier, for example "nd06".
	ID string `yaml:"id"`

	// File is a path to the JSON data file. Relative paths are resolved
	// against the data directory.
	File string `yaml:"file"`

	Name      species.Bilingual `yaml:"name"`
	ShortName species.Bilingual `yaml:"short_name,omitempty"`

	// URL of the official text.
	URL string `yaml:"url,omitempty"`
}

// Validate checks the configuration for errors. Problems that do not
// prevent reading data files are collected in Warnings.
func (c *LawsConfig) Validate() error {
	if len(c.Laws) == 0 {
		return fmt.Errorf("no laws specified in configuration")
	}

	ids := make(map[string]struct{})
	files := make(map[string]struct{})
	for i := range c.Laws {
		l := &c.Laws[i]
		l.ID = strings.TrimSpace(l.ID)
		l.File = strings.TrimSpace(l.File)

		if l.ID == "" {
			return fmt.Errorf("law %d: id is required", i+1)
		}
		if !idRe.MatchString(l.ID) {
			return fmt.Errorf(
				"law %d: id '%s' must contain only lowercase letters, digits and '_'",
				i+1, l.ID,
			)
		}
		if _, ok := ids[l.ID]; ok {
			return fmt.Errorf("law %d: duplicate id '%s'", i+1, l.ID)
		}
		ids[l.ID] = struct{}{}

		if l.File == "" {
			return fmt.Errorf("law '%s': file is required", l.ID)
		}
		if _, ok := files[l.File]; ok {
			c.warn(l.ID, "file", fmt.Sprintf("file '%s' is listed twice", l.File))
		}
		files[l.File] = struct{}{}

		if l.Name.VI == "" && l.Name.EN == "" {
			c.warn(l.ID, "name", "name is empty, id is used instead")
			l.Name = species.Bilingual{VI: l.ID, EN: l.ID}
		}

		if l.URL != "" && !isValidURL(l.URL) {
			c.warn(l.ID, "url", fmt.Sprintf("'%s' is not an http(s) URL", l.URL))
		}
	}
	return nil
}

// Files returns data file paths in the order of the registry.
func (c *LawsConfig) Files() []string {
	res := make([]string, len(c.Laws))
	for i, v := range c.Laws {
		res[i] = v.File
	}
	return res
}

// ByID returns a law by its id.
func (c *LawsConfig) ByID(id string) (Law, bool) {
	for _, v := range c.Laws {
		if v.ID == id {
			return v, true
		}
	}
	return Law{}, false
}

func (c *LawsConfig) warn(id, field, msg string) {
	c.Warnings = append(c.Warnings, ValidationWarning{
		LawID:   id,
		Field:   field,
		Message: msg,
	})
}

func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != ""
}
