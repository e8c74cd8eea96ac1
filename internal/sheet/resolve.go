// Package sheet locates the numeric column in tabular data and reads/writes
// Excel workbooks.
package sheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultColumnAliases are the normalized header names recognized as the
// numeric column.
var DefaultColumnAliases = []string{"numero", "num"}

var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeHeader computes the comparison key for a column label: canonical
// decomposition with combining marks dropped, all whitespace removed,
// lowercase. "  Número " and "numero" normalize to the same key.
func NormalizeHeader(label string) string {
	s, _, err := transform.String(stripMarks, label)
	if err != nil {
		s = label
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToLower(s)
}

// Resolver matches column labels against a fixed alias set.
type Resolver struct {
	aliases map[string]struct{}
	names   []string
}

// NewResolver creates a Resolver for the given normalized aliases.
// Passing nil selects DefaultColumnAliases.
func NewResolver(aliases []string) *Resolver {
	if aliases == nil {
		aliases = DefaultColumnAliases
	}
	set := make(map[string]struct{}, len(aliases))
	for _, a := range aliases {
		set[NormalizeHeader(a)] = struct{}{}
	}
	return &Resolver{aliases: set, names: aliases}
}

// Aliases returns the configured alias names.
func (r *Resolver) Aliases() []string {
	return r.names
}

// Resolve returns the first label, in the given order, whose normalized key
// is in the alias set. The label comes back verbatim so callers can index
// the dataset with it.
func (r *Resolver) Resolve(labels []string) (string, bool) {
	for _, label := range labels {
		if _, ok := r.aliases[NormalizeHeader(label)]; ok {
			return label, true
		}
	}
	return "", false
}

// ResolveIndex is Resolve returning the column position instead of the label.
func (r *Resolver) ResolveIndex(labels []string) (int, bool) {
	for i, label := range labels {
		if _, ok := r.aliases[NormalizeHeader(label)]; ok {
			return i, true
		}
	}
	return -1, false
}
