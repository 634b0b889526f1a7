package domain

import (
	"regexp"
	"slices"
	"strings"
)

var (
	disallowedChars = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	separatorRuns   = regexp.MustCompile(`[\s_]+`)
)

// NormalizeName converts a file stem to kebab-case.
//
// Characters other than ASCII letters, digits, whitespace and hyphens are
// removed first, then every run of whitespace or underscores becomes a single
// hyphen and the result is lowercased. The function is idempotent.
func NormalizeName(stem string) string {
	cleaned := disallowedChars.ReplaceAllString(stem, "")
	return strings.ToLower(separatorRuns.ReplaceAllString(cleaned, "-"))
}

// Identity is the normalized basename shared by an icon's vector source and
// its raster derivatives.
type Identity = InternedString

// NewIdentity interns a basename as an Identity.
// The caller is responsible for passing an already normalized name.
func NewIdentity(name string) Identity {
	return NewInternedString(name)
}

// IdentitySet is the set of identities that are live for a run.
type IdentitySet map[Identity]struct{}

// NewIdentitySet returns a set holding the given names.
func NewIdentitySet(names ...string) IdentitySet {
	s := make(IdentitySet, len(names))
	for _, n := range names {
		s.Add(NewIdentity(n))
	}
	return s
}

// Add inserts id into the set.
func (s IdentitySet) Add(id Identity) {
	s[id] = struct{}{}
}

// Has reports whether the basename is in the set.
func (s IdentitySet) Has(name string) bool {
	_, ok := s[NewIdentity(name)]
	return ok
}

// Union returns a new set holding the members of s and other.
func (s IdentitySet) Union(other IdentitySet) IdentitySet {
	out := make(IdentitySet, len(s)+len(other))
	for id := range s {
		out.Add(id)
	}
	for id := range other {
		out.Add(id)
	}
	return out
}

// Names returns the members as sorted strings.
func (s IdentitySet) Names() []string {
	names := make([]string, 0, len(s))
	for id := range s {
		names = append(names, id.String())
	}
	slices.Sort(names)
	return names
}
