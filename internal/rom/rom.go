package rom

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	tokenPattern    = regexp.MustCompile(`\(([^)]*)\)`)
	regionSeparator = regexp.MustCompile(` *, *`)
	revisionPattern = regexp.MustCompile(`(?i)^rev +([a-z0-9.]+)$`)
	versionPattern  = regexp.MustCompile(`(?i)^v *([0-9.]+)$`)
)

// Rom is the parsed form of a single file name.
type Rom struct {
	Name     string
	Regions  []string
	Params   []string
	Revision string
	Version  string
}

// Parse extracts the parenthesized tokens of name and builds a Rom from them.
func Parse(name string) Rom {
	return New(name, Tokens(name))
}

// New builds a Rom from a file name and its parenthesized tokens. The first
// token is always read as the region declaration, whatever it contains. The
// remaining tokens become params, and the first one that looks like a
// revision or a version sets that field; later tokens are not inspected.
func New(name string, tokens []string) Rom {
	r := Rom{Name: name}
	if len(tokens) == 0 {
		return r
	}

	trimmed := make([]string, len(tokens))
	for i, token := range tokens {
		trimmed[i] = strings.TrimSpace(token)
	}

	r.Regions = regionSeparator.Split(trimmed[0], -1)
	r.Params = trimmed[1:]

	for _, param := range r.Params {
		if m := revisionPattern.FindStringSubmatch(param); m != nil {
			r.Revision = m[1]
			break
		}
		if m := versionPattern.FindStringSubmatch(param); m != nil {
			r.Version = m[1]
			break
		}
	}
	return r
}

// Tokens returns the contents of every "(...)" segment in name, in order.
func Tokens(name string) []string {
	matches := tokenPattern.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[1])
	}
	return tokens
}

// Title returns the normalized title used to group variants: the text before
// the first parenthesis, or the name without its extension when it has no
// parenthesized segment, lower-cased and trimmed.
func Title(name string) string {
	base := name
	if tokenPattern.MatchString(name) {
		if idx := strings.IndexByte(name, '('); idx >= 0 {
			base = name[:idx]
		}
	} else {
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.TrimSpace(cases.Lower(language.Und).String(base))
}

// HasRevision reports whether a revision marker was found.
func (r Rom) HasRevision() bool { return r.Revision != "" }

// HasVersion reports whether a version marker was found.
func (r Rom) HasVersion() bool { return r.Version != "" }

// LowerRegions returns the declared regions lower-cased, or a single empty
// region when none were declared.
func (r Rom) LowerRegions() []string {
	if len(r.Regions) == 0 {
		return []string{""}
	}
	caser := cases.Lower(language.Und)
	out := make([]string, len(r.Regions))
	for i, region := range r.Regions {
		out[i] = caser.String(region)
	}
	return out
}
